package entity

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genAlarm() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 23),
		gen.IntRange(0, 59),
		gen.UInt8Range(0, 127),
	).Map(func(values []interface{}) Alarm {
		return Alarm{
			Hour:    values[0].(int),
			Minute:  values[1].(int),
			DayMask: DayMask(values[2].(uint8)),
		}
	})
}

func genInstant() gopter.Gen {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	return gen.Int64Range(0, 2*365*24*3600).Map(func(offset int64) time.Time {
		return time.Unix(base+offset, 0).UTC()
	})
}

func TestAlarm_NextOccurrence_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("result is strictly in the future", prop.ForAll(
		func(alarm Alarm, now time.Time) bool {
			return alarm.NextOccurrence(now).After(now.Truncate(time.Second))
		},
		genAlarm(), genInstant(),
	))

	properties.Property("result is at most eight days out", prop.ForAll(
		func(alarm Alarm, now time.Time) bool {
			return alarm.NextOccurrence(now).Sub(now) <= 8*24*time.Hour
		},
		genAlarm(), genInstant(),
	))

	properties.Property("result keeps the alarm's hour and minute", prop.ForAll(
		func(alarm Alarm, now time.Time) bool {
			next := alarm.NextOccurrence(now)

			return next.Hour() == alarm.Hour && next.Minute() == alarm.Minute
		},
		genAlarm(), genInstant(),
	))

	properties.Property("result lands on a selected weekday", prop.ForAll(
		func(alarm Alarm, now time.Time) bool {
			if alarm.DayMask.IsEmpty() {
				return true
			}

			return alarm.DayMask.Contains(alarm.NextOccurrence(now).Weekday())
		},
		genAlarm(), genInstant(),
	))

	properties.TestingRun(t)
}
