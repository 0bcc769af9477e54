package livedisplay

import "log"

// #region notification

// Notification is the one-shot hint surfaced to the user.
type Notification struct {
	Key          string
	Title        string
	Body         string
	Icon         string
	IntentAction string
	AutoCancel   bool
}

// Notifier delivers a notification to the host surface.
type Notifier interface {
	Notify(n Notification)
}

// #endregion notification

// #region log-notifier

// LogNotifier writes notifications to the process log. Used when no real
// notification surface is wired in.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	log.Printf("[NUDGE] notify key=%s title=%q body=%q intent=%s", n.Key, n.Title, n.Body, n.IntentAction)
}

// #endregion log-notifier
