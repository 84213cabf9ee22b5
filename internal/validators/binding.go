package validators

import (
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register adds the calendar tags to gin's request validator:
//
//	day           "YYYY-MM-DD"
//	slot_time     one of the half-hour slots
//	pitch_type    5k_pitched | 20k_pitched
//	lead_source   ads | youtube
//	lead_quality  best | good | average
//	deposit       paid | unpaid
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("validators: gin validator engine is not go-playground/validator")
			return
		}
		tags := map[string]func(string) bool{
			"day":          IsDay,
			"slot_time":    appointment.IsSlotTime,
			"pitch_type":   func(s string) bool { return appointment.Track(s).Valid() },
			"lead_source":  func(s string) bool { return appointment.LeadSource(s).Valid() },
			"lead_quality": func(s string) bool { return appointment.LeadQuality(s).Valid() },
			"deposit":      func(s string) bool { return appointment.DepositState(s).Valid() },
		}
		for tag, check := range tags {
			check := check
			if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return check(fl.Field().String())
			}); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

func IsDay(s string) bool {
	_, err := time.Parse(appointment.DayLayout, s)
	return err == nil
}

// FieldErrors lists "field: tag" for each failed rule, or nil when err did
// not come from the validator.
func FieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field()+": "+fe.Tag())
	}
	return out
}
