package events

import "reflect"

// ExtractGameID pulls the GameID field out of any event struct, so the event
// log and the dispatcher can route events without enumerating every type.
func ExtractGameID(event Event) string {
	val := reflect.ValueOf(event)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() == reflect.Struct {
		gameID := val.FieldByName("GameID")
		if gameID.IsValid() && gameID.Kind() == reflect.String {
			return gameID.String()
		}
	}

	return ""
}
