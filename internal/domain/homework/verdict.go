package homework

import "fmt"

const homeworkNameField = "homework_name"

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human readable sentence for a status code.
func Verdict(status Status) (string, bool) {
	v, ok := verdicts[status]
	return v, ok
}

// ParseStatus builds the status-change notification for a homework.
func ParseStatus(hw Homework) (string, error) {
	if !hw.HasName() {
		return "", Newf(KindMissingField, "API вернул домашнее задание без ключа %q", homeworkNameField)
	}
	name := hw.DisplayName()

	verdict, ok := Verdict(hw.Status)
	if !ok {
		return "", Newf(KindUnknownStatus, "API вернул неизвестный статус %q для %q", string(hw.Status), name)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
