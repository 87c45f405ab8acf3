package annotation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var ErrUnknownKind = errors.New("unknown annotation type")

// List is an ordered annotation slice that round-trips through the
// saved-tactic JSON format, where each element carries a "type" tag.
type List []Annotation

func (l *List) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(List, 0, len(raws))
	for i, raw := range raws {
		a, err := Decode(raw)
		if err != nil {
			return fmt.Errorf("annotation %d: %w", i, err)
		}
		out = append(out, a)
	}
	*l = out
	return nil
}

// Decode builds the concrete variant named by the "type" tag of raw.
func Decode(raw []byte) (Annotation, error) {
	kind := Kind(gjson.GetBytes(raw, "type").String())
	switch kind {
	case KindLine:
		return decodeAs[Line](raw)
	case KindCurve:
		return decodeAs[Curve](raw)
	case KindPath:
		return decodeAs[Path](raw)
	case KindFreehand:
		return decodeAs[Freehand](raw)
	case KindMarker:
		return decodeAs[Marker](raw)
	case KindConnection:
		return decodeAs[Connection](raw)
	case KindPassTrace:
		return decodeAs[PassTrace](raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func decodeAs[T Annotation](raw []byte) (Annotation, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (l Line) MarshalJSON() ([]byte, error) {
	type line Line
	return json.Marshal(struct {
		Type Kind `json:"type"`
		line
	}{KindLine, line(l)})
}

func (c Curve) MarshalJSON() ([]byte, error) {
	type curve Curve
	return json.Marshal(struct {
		Type Kind `json:"type"`
		curve
	}{KindCurve, curve(c)})
}

func (p Path) MarshalJSON() ([]byte, error) {
	type path Path
	return json.Marshal(struct {
		Type Kind `json:"type"`
		path
	}{KindPath, path(p)})
}

func (f Freehand) MarshalJSON() ([]byte, error) {
	type freehand Freehand
	return json.Marshal(struct {
		Type Kind `json:"type"`
		freehand
	}{KindFreehand, freehand(f)})
}

func (m Marker) MarshalJSON() ([]byte, error) {
	type marker Marker
	return json.Marshal(struct {
		Type Kind `json:"type"`
		marker
	}{KindMarker, marker(m)})
}

func (c Connection) MarshalJSON() ([]byte, error) {
	type connection Connection
	return json.Marshal(struct {
		Type Kind `json:"type"`
		connection
	}{KindConnection, connection(c)})
}

func (p PassTrace) MarshalJSON() ([]byte, error) {
	type passTrace PassTrace
	return json.Marshal(struct {
		Type Kind `json:"type"`
		passTrace
	}{KindPassTrace, passTrace(p)})
}
