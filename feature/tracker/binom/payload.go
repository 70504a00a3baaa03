package binom

import (
	"bytes"
	"encoding/json"
	"strconv"

	"cost-sync/feature/tracker"
)

// campaignPayload is the v2 campaign shape. Binom serves numeric fields
// both quoted and unquoted depending on version, hence flexInt.
type campaignPayload struct {
	ID       flexInt `json:"id"`
	Name     string  `json:"name"`
	ClickKey string  `json:"click_key"`
}

func (p campaignPayload) campaign() tracker.Campaign {
	return tracker.Campaign{
		ID:       p.ID.value,
		Name:     p.Name,
		ClickKey: p.ClickKey,
	}
}

// updateCostPayload is the v1 save_update_costs response shape. Both
// fields are optional; an absent update_status means "not updated".
type updateCostPayload struct {
	UpdateStatus flexBool `json:"update_status"`
	Warning      []string `json:"warning"`
}

// flexInt decodes integers that may arrive as JSON numbers or as
// quoted numeric strings.
type flexInt struct {
	value int
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		f.value = 0
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

// flexBool decodes truthiness the way the tracker reports it: true,
// 1, or "1" all count as set.
type flexBool struct {
	value bool
}

func (f *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	switch string(data) {
	case "true", "1":
		f.value = true
	default:
		f.value = false
	}
	return nil
}

var (
	_ json.Unmarshaler = (*flexInt)(nil)
	_ json.Unmarshaler = (*flexBool)(nil)
)
