package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Os dias de trabalho do barbeiro são armazenados como códigos fixos de três
// letras ("Mon,Tue,..."). A tabela abaixo é explícita de propósito: nada de
// derivar nome de weekday via locale.
var weekdayIndex = map[string]int{
	"Mon": 0,
	"Tue": 1,
	"Wed": 2,
	"Thu": 3,
	"Fri": 4,
	"Sat": 5,
	"Sun": 6,
}

var weekdayCode = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WorkingDays é o conjunto de dias da semana em que o barbeiro atende,
// indexado Mon=0..Sun=6.
type WorkingDays [7]bool

// ParseWorkingDays valida e converte "Mon,Tue,Fri" em WorkingDays.
func ParseWorkingDays(s string) (WorkingDays, error) {
	var days WorkingDays

	for _, part := range strings.Split(s, ",") {
		code := strings.TrimSpace(part)
		if code == "" {
			continue
		}
		idx, ok := weekdayIndex[code]
		if !ok {
			return WorkingDays{}, fmt.Errorf("dia da semana inválido: %q", code)
		}
		days[idx] = true
	}

	return days, nil
}

// Contains informa se o weekday (convenção do stdlib, Sun=0) é dia de trabalho.
func (w WorkingDays) Contains(d time.Weekday) bool {
	return w[(int(d)+6)%7]
}

// IsEmpty informa se nenhum dia foi marcado.
func (w WorkingDays) IsEmpty() bool {
	for _, on := range w {
		if on {
			return false
		}
	}
	return true
}

// String devolve a forma canônica "Mon,Tue,...".
func (w WorkingDays) String() string {
	var codes []string
	for i, on := range w {
		if on {
			codes = append(codes, weekdayCode[i])
		}
	}
	return strings.Join(codes, ",")
}
