package cache

import "fmt"

// Chaves compartilhadas entre o repositório (leitura) e os handlers
// de configuração de agenda (invalidação na escrita).

func HoursKey(scope string, ownerID uint) string {
	return fmt.Sprintf("schedule:hours:%s:%d", scope, ownerID)
}

func BreaksKey(scope string, ownerID uint) string {
	return fmt.Sprintf("schedule:breaks:%s:%d", scope, ownerID)
}

func VacationsKey(scope string, ownerID uint) string {
	return fmt.Sprintf("schedule:vacations:%s:%d", scope, ownerID)
}
