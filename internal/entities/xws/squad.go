// Package xws models the XWS squad document returned by the conversion service
package xws

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SogeMoge/xwsbot/internal/entities"
)

// Squad is an XWS squad document
type Squad struct {
	Faction     string          `json:"faction"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Points      entities.Number `json:"points"`
	Pilots      []Pilot         `json:"pilots"`
	Vendor      Vendor          `json:"vendor"`
	Version     string          `json:"version,omitempty"`
}

// Pilot is one ship entry of a squad, in deployment order
type Pilot struct {
	ID       string          `json:"id"`
	Name     string          `json:"name,omitempty"`
	Ship     string          `json:"ship"`
	Points   entities.Number `json:"points"`
	Upgrades UpgradeSlots    `json:"upgrades"`
}

// Vendor carries builder specific metadata
type Vendor struct {
	YASB YASBVendor `json:"yasb"`
}

// YASBVendor holds the canonical builder link
type YASBVendor struct {
	Builder    string `json:"builder,omitempty"`
	BuilderURL string `json:"builder_url,omitempty"`
	Link       string `json:"link"`
}

// UpgradeSlot is one slot type with its upgrade ids
type UpgradeSlot struct {
	Slot string
	IDs  []string
}

// UpgradeSlots keeps slots in document order. encoding/json maps lose
// ordering, and upgrade order is visible in the rendered output.
type UpgradeSlots []UpgradeSlot

// UnmarshalJSON reads an object of slot -> []id. Slots whose value is not a
// list of strings are skipped, and a JSON array is read as no upgrades.
func (u *UpgradeSlots) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	// some exporters write an empty list instead of an empty object
	if bytes.Equal(data, []byte("null")) || (len(data) > 0 && data[0] == '[') {
		*u = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("upgrades: expected object, got %v", tok)
	}

	slots := UpgradeSlots{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			continue
		}
		slots = append(slots, UpgradeSlot{Slot: key, IDs: ids})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*u = slots
	return nil
}

// MarshalJSON writes the slots back as an object in their original order
func (u UpgradeSlots) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, slot := range u {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(slot.Slot)
		if err != nil {
			return nil, err
		}
		ids := slot.IDs
		if ids == nil {
			ids = []string{}
		}
		val, err := json.Marshal(ids)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// IDs flattens every slot into one ordered list of upgrade ids
func (u UpgradeSlots) IDs() []string {
	var out []string
	for _, slot := range u {
		out = append(out, slot.IDs...)
	}
	return out
}
