package practicum

import (
	"bytes"
	"encoding/json"
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

const homeworksKey = "homeworks"

// CheckResponse extracts the homework list from a status API response.
// Records are returned in the order the API sent them.
func CheckResponse(resp Response) ([]homework.Homework, error) {
	raw, ok := resp[homeworksKey]
	if !ok {
		return nil, homework.Newf(homework.KindMalformedResponse, "В ответе API нет ключа %q", homeworksKey)
	}

	if kind := jsonType(raw); kind != "array" {
		return nil, homework.Newf(homework.KindInvalidType,
			"Тип значения %q в ответе API %q не является списком", homeworksKey, kind)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, homework.Wrap(err, homework.KindMalformedResponse,
			fmt.Sprintf("Не удалось разобрать %q: %v", homeworksKey, err))
	}

	list := make([]homework.Homework, 0, len(items))
	for i, item := range items {
		if kind := jsonType(item); kind != "object" {
			return nil, homework.Newf(homework.KindMalformedResponse,
				"Элемент %d списка %q имеет тип %q вместо объекта", i, homeworksKey, kind)
		}
		var hw homework.Homework
		if err := json.Unmarshal(item, &hw); err != nil {
			return nil, homework.Wrap(err, homework.KindMalformedResponse,
				fmt.Sprintf("Не удалось разобрать элемент %d списка %q: %v", i, homeworksKey, err))
		}
		list = append(list, hw)
	}
	return list, nil
}

// jsonType names the JSON type of a raw value by its first byte.
func jsonType(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '[':
		return "array"
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
