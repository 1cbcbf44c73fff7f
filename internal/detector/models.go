package detector

import "encoding/json"

// DetectRequest is the body sent to the AI-detection endpoint.
type DetectRequest struct {
	Text string `json:"text"`
}

// Detection holds the detector's response JSON verbatim. The service
// treats it as opaque; only the optional "score" field is ever read.
type Detection struct {
	Raw json.RawMessage
}

// Score returns the detector's numeric score field if present.
func (d *Detection) Score() (float64, bool) {
	var body struct {
		Score *float64 `json:"score"`
	}
	if err := json.Unmarshal(d.Raw, &body); err != nil || body.Score == nil {
		return 0, false
	}
	return *body.Score, true
}

// TransportError wraps any failure reaching the detection endpoint:
// network errors, timeouts and non-2xx statuses.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
