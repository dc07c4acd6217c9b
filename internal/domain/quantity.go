package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Quantity is written as an int64. Older listings stored it as a double or as
// the raw text the client sent, so reads accept those too. Text that is not a
// number, and values outside int64, read as 0 rather than failing the query.
type Quantity int64

func (q *Quantity) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeInt32:
		*q = Quantity(raw.Int32())
	case bson.TypeInt64:
		*q = Quantity(raw.Int64())
	case bson.TypeDouble:
		*q = quantityFromFloat(raw.Double())
	case bson.TypeDecimal128:
		value, err := strconv.ParseFloat(raw.Decimal128().String(), 64)
		if err != nil {
			*q = 0
			return nil
		}
		*q = quantityFromFloat(value)
	case bson.TypeString:
		*q = quantityFromText(raw.StringValue())
	case bson.TypeNull, bson.TypeUndefined:
		*q = 0
	default:
		return fmt.Errorf("cannot decode %s into a quantity", t)
	}

	return nil
}

func quantityFromText(text string) Quantity {
	text = strings.TrimSpace(text)
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Quantity(value)
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return quantityFromFloat(value)
}

func quantityFromFloat(value float64) Quantity {
	if math.IsNaN(value) || value < math.MinInt64 || value >= math.MaxInt64 {
		return 0
	}
	return Quantity(math.Trunc(value))
}
