package sensor

import "time"

// Status is the health band derived from a reading's value.
type Status string

const (
	StatusGood        Status = "Good"
	StatusConcern     Status = "Concern"
	StatusMalfunction Status = "Malfunction"
)

// Mechanism tags the corrosion mechanism observed on a corrosion reading.
// It is independent simulated noise, not derived from the value.
type Mechanism string

const (
	MechanismUniform  Mechanism = "Uniform"
	MechanismPitting  Mechanism = "Pitting"
	MechanismGalvanic Mechanism = "Galvanic"
	MechanismCrevice  Mechanism = "Crevice"
)

var mechanisms = []Mechanism{MechanismUniform, MechanismPitting, MechanismGalvanic, MechanismCrevice}

// Reading is one timestamped observation from a single sensor.
// Mechanism is set for corrosion readings only.
type Reading struct {
	Time      time.Time `json:"time"`
	SensorID  int       `json:"sensorId"`
	Value     float64   `json:"value"`
	Status    Status    `json:"status"`
	Mechanism Mechanism `json:"mechanism,omitempty"`
}

// Series holds the chronologically ordered readings of one sensor over
// a time window. It is rebuilt from scratch on every refresh and never
// cached or persisted.
type Series struct {
	Category Category  `json:"category"`
	SensorID int       `json:"sensorId"`
	Readings []Reading `json:"readings"`
}

// Last returns the chronologically last reading of the series.
func (s Series) Last() (Reading, bool) {
	if len(s.Readings) == 0 {
		return Reading{}, false
	}
	return s.Readings[len(s.Readings)-1], true
}
