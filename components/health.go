package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
	Dead    bool
}

// Fraction is Current/Max, 0 when Max is unset.
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
