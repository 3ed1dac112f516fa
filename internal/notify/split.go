package notify

import "strings"

const (
	// chunkLimit is the longest message the length-limited channel accepts.
	chunkLimit = 140
	// splitIndex is the position the splitter scans back from for a space.
	splitIndex = 132
)

// SplitMessage breaks a message into an ordered sequence of chunks that each
// fit the length-limited channel. Continuation chunks are suffixed and
// prefixed with "..." so the sequence reads as one message.
// For example: abcdef: "abc ..." "... def".
func SplitMessage(message string) []string {
	var messages []string
	for len(message) > chunkLimit {
		i := strings.LastIndex(message[:splitIndex+1], " ")
		if i < 0 {
			// No space to cut at; hard cut so the loop still terminates.
			messages = append(messages, message[:splitIndex]+" ...")
			message = "... " + message[splitIndex:]
			continue
		}
		messages = append(messages, message[:i]+" ...")
		message = "... " + message[i+1:]
	}
	return append(messages, message)
}
