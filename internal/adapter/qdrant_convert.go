package adapter

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-vector-console/models"
	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// parsePointIDs turns display ids back into Qdrant point ids. Unsigned
// integers become numeric ids, UUIDs stay UUIDs; anything else cannot name a
// Qdrant point and is dropped.
func parsePointIDs(ids []string) []*qdrant.PointId {
	out := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		if pointID, ok := parsePointID(id); ok {
			out = append(out, pointID)
		}
	}
	return out
}

// toPointIDs is the strict form of parsePointIDs used for mutations: one
// unparseable id fails the whole list.
func toPointIDs(ids []string) ([]*qdrant.PointId, error) {
	out := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointID, ok := parsePointID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a qdrant point id", ErrBadRequest, id)
		}
		out = append(out, pointID)
	}
	return out, nil
}

func parsePointID(id string) (*qdrant.PointId, bool) {
	if num, err := strconv.ParseUint(id, 10, 64); err == nil {
		return qdrant.NewIDNum(num), true
	}
	if u, err := uuid.Parse(id); err == nil {
		return qdrant.NewID(u.String()), true
	}
	return nil, false
}

func formatPointID(id *qdrant.PointId) string {
	switch v := id.GetPointIdOptions().(type) {
	case *qdrant.PointId_Num:
		return strconv.FormatUint(v.Num, 10)
	case *qdrant.PointId_Uuid:
		return v.Uuid
	default:
		return ""
	}
}

// pointToDocument moves the text field out of the payload; what is left is
// the metadata.
func pointToDocument(p *qdrant.RetrievedPoint, textField string) models.Document {
	doc := models.Document{ID: formatPointID(p.GetId())}

	payload := payloadToMap(p.GetPayload())
	if text, ok := payload[textField].(string); ok {
		doc.Text = text
		delete(payload, textField)
	}
	if len(payload) > 0 {
		doc.Metadata = payload
	}
	return doc
}

func payloadToMap(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = valueToAny(v)
	}
	return result
}

func valueToAny(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.GetKind().(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_StructValue:
		return payloadToMap(val.StructValue.GetFields())
	case *qdrant.Value_ListValue:
		items := make([]any, len(val.ListValue.GetValues()))
		for i, item := range val.ListValue.GetValues() {
			items[i] = valueToAny(item)
		}
		return items
	default:
		return nil
	}
}
