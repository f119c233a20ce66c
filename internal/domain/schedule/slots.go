package schedule

import (
	"iter"
	"time"
)

// SlotDuration é a duração fixa de um atendimento.
const SlotDuration = 30 * time.Minute

// Slots gera a grade de horários candidatos entre start e end, de step em
// step. A sequência é preguiçosa e pode ser percorrida mais de uma vez; o
// número de slots é floor(minutos_decorridos/step) — calculado pelo tempo
// real decorrido, para janelas que não fecham em hora cheia.
//
// Janela invertida (end <= start) gera sequência vazia; a configuração do
// barbeiro deve rejeitar esse caso antes.
func Slots(start, end TimeOfDay, step time.Duration) iter.Seq[TimeOfDay] {
	return func(yield func(TimeOfDay) bool) {
		if step <= 0 {
			return
		}
		for cur := start; cur.Add(step) <= end; cur = cur.Add(step) {
			if !yield(cur) {
				return
			}
		}
	}
}

// SlotCount devolve quantos slots a janela comporta.
func SlotCount(start, end TimeOfDay, step time.Duration) int {
	if step <= 0 || end <= start {
		return 0
	}
	return int(time.Duration(end-start) * time.Minute / step)
}
