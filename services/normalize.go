package services

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"hostel-backend/models"
)

// Normalization boundary for the upstream feeds. The upstream API is loose
// about field names and types (the same room reference travels as room_uuid,
// room or roomUuid depending on the endpoint; amounts arrive as numbers or
// numeric strings; amenities as an array or a JSON-encoded string), so all
// alias resolution and defensive parsing happens here. The reconciliation
// functions only ever see the canonical models.

// tenant room-reference aliases, checked in preference order.
var tenantRoomRefKeys = []string{"room_uuid", "room", "roomUuid"}

// NormalizeTenant maps one raw upstream tenant object onto models.Tenant.
// Missing or malformed fields degrade to zero values; a single corrupt record
// must never abort a sync pass.
func NormalizeTenant(raw map[string]interface{}) models.Tenant {
	t := models.Tenant{
		UUID:        stringFromMap(raw, "uuid", "id"),
		FullName:    stringFromMap(raw, "full_name", "fullName", "name"),
		Email:       stringFromMap(raw, "email"),
		Phone:       stringFromMap(raw, "phone", "phone_number"),
		RoomTypeRef: stringFromMap(raw, tenantRoomRefKeys...),
		RentAmount:  numberFromMap(raw, "amount", "rent_amount", "price"),
		IsActive:    boolFromMap(raw, true, "is_active", "isActive", "active"),
	}
	if d, ok := dateFromMap(raw, "date_created", "check_in_date", "checkInDate"); ok {
		t.CheckInDate = &d
	}
	return t
}

// NormalizeRoomType maps one raw upstream room-catalog object onto
// models.RoomType. The result is gender-reconciled before being returned so
// catalog snapshots are always internally consistent.
func NormalizeRoomType(raw map[string]interface{}) models.RoomType {
	rt := models.RoomType{
		UUID:            stringFromMap(raw, "uuid", "id"),
		Label:           stringFromMap(raw, "room_label", "label"),
		CapacityPerRoom: intFromMap(raw, "number_in_room", "capacity_per_room"),
		RoomCount:       intFromMap(raw, "number_of_rooms", "room_count"),
		Price:           numberFromMap(raw, "price"),
		GenderPolicy:    models.GenderMixed,
		Amenities:       parseAmenities(raw["amenities"]),
	}

	if g, ok := raw["gender"].(map[string]interface{}); ok {
		rt.MaleRoomCount = intFromAny(g["male"])
		rt.FemaleRoomCount = intFromAny(g["female"])
		switch {
		case rt.RoomCount > 0 && rt.MaleRoomCount == rt.RoomCount && rt.FemaleRoomCount == 0:
			rt.GenderPolicy = models.GenderMale
		case rt.RoomCount > 0 && rt.FemaleRoomCount == rt.RoomCount && rt.MaleRoomCount == 0:
			rt.GenderPolicy = models.GenderFemale
		}
	}

	return ReconcileGender(rt, EditRoomCount)
}

var positionalRoomPattern = regexp.MustCompile(`^\s*(\d+)\s+in\s+room\b`)

// RoomRefFromPositionalLabel is a fallback adapter for tenant rows that carry
// no room reference at all, only a display string like "3 in room". The
// leading number is taken as a 1-based position into the catalog as listed by
// the upstream. This is a workaround for a missing upstream field, kept out
// of the trusted data path: it is only consulted when every alias in
// tenantRoomRefKeys is empty, and an out-of-range position yields "".
func RoomRefFromPositionalLabel(label string, catalog []models.RoomType) string {
	m := positionalRoomPattern.FindStringSubmatch(label)
	if m == nil {
		return ""
	}
	pos, err := strconv.Atoi(m[1])
	if err != nil || pos < 1 || pos > len(catalog) {
		return ""
	}
	return catalog[pos-1].UUID
}

// parseAmenities accepts an array, a JSON-encoded string, or anything else,
// and always produces a valid JSON array (empty on any parse failure).
func parseAmenities(v interface{}) datatypes.JSON {
	empty := datatypes.JSON([]byte("[]"))
	switch val := v.(type) {
	case nil:
		return empty
	case string:
		var labels []string
		if err := json.Unmarshal([]byte(val), &labels); err != nil {
			return empty
		}
		b, err := json.Marshal(labels)
		if err != nil {
			return empty
		}
		return datatypes.JSON(b)
	case []interface{}:
		labels := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				labels = append(labels, s)
			}
		}
		b, err := json.Marshal(labels)
		if err != nil {
			return empty
		}
		return datatypes.JSON(b)
	default:
		return empty
	}
}

// stringFromMap returns the first non-empty string value among keys.
func stringFromMap(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprintf("%v", v)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func numberFromMap(m map[string]interface{}, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return numberFromAny(v)
		}
	}
	return 0
}

func intFromMap(m map[string]interface{}, keys ...string) int {
	return int(numberFromMap(m, keys...))
}

func intFromAny(v interface{}) int {
	return int(numberFromAny(v))
}

// numberFromAny coerces JSON numbers, numeric strings and json.Number to a
// finite float64, with 0 for everything unparseable.
func numberFromAny(v interface{}) float64 {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case int:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func boolFromMap(m map[string]interface{}, def bool, keys ...string) bool {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case bool:
			return val
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(val))
			if err == nil {
				return parsed
			}
		case float64:
			return val != 0
		}
	}
	return def
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func dateFromMap(m map[string]interface{}, keys ...string) (time.Time, bool) {
	raw := stringFromMap(m, keys...)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
