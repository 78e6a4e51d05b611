package dto

const LineMessageTypeText = "text"

// LinePushRequest is the body of POST /v2/bot/message/push.
type LinePushRequest struct {
	To       string        `json:"to"`
	Messages []LineMessage `json:"messages"`
}

type LineMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewLineTextPush builds a push request carrying a single text message.
func NewLineTextPush(to, text string) *LinePushRequest {
	return &LinePushRequest{
		To: to,
		Messages: []LineMessage{
			{Type: LineMessageTypeText, Text: text},
		},
	}
}
