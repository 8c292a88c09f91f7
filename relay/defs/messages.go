package defs

const (
	// WelcomeMessageBody is the welcome text sent to connections once they are subscribed
	WelcomeMessageBody = "welcome to relay"
)
