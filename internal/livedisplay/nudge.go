package livedisplay

// #region imports
import (
	"fmt"
	"io"
	"log"

	"github.com/cmarkham/livedisplay/internal/settings"
	"github.com/google/uuid"
)

// #endregion imports

// #region nudge-policy

// NudgePolicy decides, across twilight transitions, whether to show the
// one-time hint about night mode. The sunset counter persists in the
// settings store: it starts at -3, climbs toward zero on sunset edges, and
// any positive value disables nudging permanently. A user who selects a
// mode before the hint fires never sees it.
//
// Only the service worker touches a NudgePolicy; no locking here.
type NudgePolicy struct {
	store    settings.Store
	notifier Notifier
	user     int

	awaiting bool // counter <= 0: still counting sunsets
	sunset   bool // previous twilight IsNight, for edge detection
}

// NewNudgePolicy derives the initial state from the persisted counter.
func NewNudgePolicy(store settings.Store, notifier Notifier, user int) *NudgePolicy {
	p := &NudgePolicy{store: store, notifier: notifier, user: user}
	p.awaiting = p.counter() < 1
	return p
}

func (p *NudgePolicy) counter() int {
	return p.store.GetInt(p.user, KeyHinted, defaultSunsetCounter)
}

func (p *NudgePolicy) setCounter(count int) {
	if err := p.store.PutInt(p.user, KeyHinted, count); err != nil {
		log.Printf("[NUDGE] persist counter: %v", err)
	}
	p.awaiting = count < 1
}

// Observe consumes one twilight update. The previous-night edge detector
// updates on every observation, even while dormant; only a day-to-night
// transition while still counting can advance the counter.
func (p *NudgePolicy) Observe(t TwilightState) {
	transition := t.IsNight && !p.sunset
	p.sunset = t.IsNight

	if !p.awaiting || !transition {
		return
	}

	counter := p.counter()
	if counter <= 0 {
		counter++
		p.setCounter(counter)
	}
	if counter == 0 {
		// Show the hint once and never come back here.
		p.notifier.Notify(Notification{
			Key:          uuid.New().String(),
			Title:        "LiveDisplay",
			Body:         "Reduce eye strain by automatically adjusting your screen color at night",
			Icon:         "ic_livedisplay_notif",
			IntentAction: "settings.LIVEDISPLAY_SETTINGS",
			AutoCancel:   true,
		})
		p.setCounter(1)
	}
}

// StopNudging disables the hint without showing it. Called when the user
// interacts with the mode setting directly.
func (p *NudgePolicy) StopNudging() {
	if p.awaiting {
		p.setCounter(1)
	}
}

// Awaiting reports whether the policy is still counting sunsets.
func (p *NudgePolicy) Awaiting() bool {
	return p.awaiting
}

// Dump writes diagnostic state.
func (p *NudgePolicy) Dump(w io.Writer) {
	state := "dormant"
	if p.awaiting {
		state = "counting"
	}
	fmt.Fprintf(w, "  nudge: state=%s counter=%d sunset=%v\n", state, p.counter(), p.sunset)
}

// #endregion nudge-policy
