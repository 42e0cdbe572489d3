package shared

import (
	"reflect"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Mrithul03/vendroo-server/shared/constant"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// StatusToCompleted maps the list-endpoint status parameter onto the completed
// column. Unrecognized values apply no filter.
func StatusToCompleted(status string) *bool {
	switch status {
	case constant.TodoStatusCompleted:
		completed := true

		return &completed
	case constant.TodoStatusPending:
		completed := false

		return &completed
	default:
		return nil
	}
}

// UpdateFields converts the fields of a partial-update request into a map of
// column/value pairs, keyed by the db tag. Zero-valued fields are skipped, so
// absent and null inputs leave the stored value untouched. Note that an
// explicitly empty string is zero-valued too and therefore also a no-op.
func UpdateFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}
