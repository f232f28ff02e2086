// Package reminder projects the notification-worthy moments of a timeline.
package reminder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"focusring/internal/core/model"
	"focusring/internal/core/stance"
	"focusring/internal/format"
)

// Kind separates period transitions from nudges after a long pause.
type Kind string

const (
	KindTransition    Kind = "transition"
	KindPausedTooLong Kind = "paused_too_long"
)

// PausedOffsets are the delays after the countdown stops at which a
// paused-too-long reminder fires.
var PausedOffsets = []time.Duration{2 * time.Minute, 5 * time.Minute, 10 * time.Minute}

// namespace seeds the deterministic descriptor identifiers.
var namespace = uuid.MustParse("6f1c9a52-3d4e-4b8a-9a57-2f0e5c7d1b23")

// Descriptor is one future notification. Its text is derived from the
// timeline as it will stand at Tick, not as it stands now.
type Descriptor struct {
	ID         uuid.UUID
	Kind       Kind
	Timeline   model.Timeline
	Tick       model.Tick
	FireOffset time.Duration
	PausedFor  time.Duration
}

// Schedule returns the reminders of timeline as seen from tick, in firing
// order.
func Schedule(timeline model.Timeline, tick model.Tick) []Descriptor {
	var descriptors []Descriptor
	stop := timeline.Countdown.Range.Hi

	if timeline.IsCountingDown(tick) {
		pattern := timeline.Pattern
		for period := pattern.NextPeriodAt(tick); period.Range.Lo < stop; period = pattern.NextPeriodAt(period.Range.Lo) {
			descriptors = append(descriptors, newDescriptor(KindTransition, timeline, period.Range.Lo, offset(period.Range.Lo-tick), 0))
		}
	}

	stop = maxTick(stop, tick)
	if remindsWhilePaused(timeline, stop) {
		untilStop := offset(stop - tick)
		for _, after := range PausedOffsets {
			descriptors = append(descriptors, newDescriptor(KindPausedTooLong, timeline, stop, untilStop+after, after))
		}
	}
	return descriptors
}

// remindsWhilePaused is false before anything was ever started and when the
// stop already lines up with the daily target.
func remindsWhilePaused(timeline model.Timeline, stop model.Tick) bool {
	if timeline.Countdown.Range == model.Instant(0) {
		return false
	}
	boundary := timeline.Pattern.PeriodAt(stop).Range.Hi
	return boundary != timeline.TargetTick(stop)
}

func newDescriptor(kind Kind, timeline model.Timeline, tick model.Tick, fireOffset, pausedFor time.Duration) Descriptor {
	name := fmt.Sprintf("%s/%d/%d/%d/%d", kind, timeline.Countdown.StartTime.Unix(), timeline.Countdown.Range.Lo, tick, fireOffset/time.Second)
	return Descriptor{
		ID:         uuid.NewSHA1(namespace, []byte(name)),
		Kind:       kind,
		Timeline:   timeline,
		Tick:       tick,
		FireOffset: fireOffset,
		PausedFor:  pausedFor,
	}
}

// FireAt returns the wall time of the reminder when scheduled at now.
func (d Descriptor) FireAt(now time.Time) time.Time {
	return now.Add(d.FireOffset)
}

// Observation classifies the timeline at the reminder's tick.
func (d Descriptor) Observation() stance.Observation {
	return stance.Observe(d.Timeline, d.Tick)
}

// Title returns the notification title.
func (d Descriptor) Title() string {
	return d.Observation().Title()
}

// Subtitle returns the notification subtitle.
func (d Descriptor) Subtitle() string {
	if d.Kind == KindPausedTooLong {
		return fmt.Sprintf("Paused for %s", format.Duration(int(d.PausedFor/time.Second)))
	}
	return d.Observation().Subtitle()
}

// Body returns the notification body.
func (d Descriptor) Body() string {
	return d.Observation().Body()
}

func offset(ticks model.Tick) time.Duration {
	return time.Duration(ticks) * time.Second
}

func maxTick(a, b model.Tick) model.Tick {
	if a > b {
		return a
	}
	return b
}
