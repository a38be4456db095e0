package frame

import "strings"

// Delimiter separates messages on the headset bridge wire.
const Delimiter = "\r"

// recordClose terminates every well-formed message object.
const recordClose = "}"

// Split divides an accumulated capture buffer into discrete message
// frames. The fixed capture deadline can cut the device off mid-message,
// so a trailing fragment that is blank or does not end with the closing
// brace is dropped. Earlier fragments are returned untouched; rejecting a
// malformed frame is the decoder's job.
func Split(buf string) []string {
	parts := strings.Split(buf, Delimiter)
	last := parts[len(parts)-1]
	if strings.TrimSpace(last) == "" || !strings.HasSuffix(last, recordClose) {
		parts = parts[:len(parts)-1]
	}
	return parts
}
