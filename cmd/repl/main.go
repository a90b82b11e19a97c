// Локальный калькулятор в терминале: движок без сервиса и без хранилищ.
// Клавиши вводятся через пробел или по одной на строку:
//
//	> 1 2 + 5 =
//	  17
//	= 17
//
// "C" — сброс, "q" — выход. Нераспознанные подписи (sin, deg, ...) — Noop.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"tapCalc/internal/engine"
)

func main() {
	state := engine.NewState()
	printDisplay(state)

	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		for _, label := range strings.Fields(sc.Text()) {
			if label == "q" || label == "quit" {
				return
			}
			state = engine.Apply(state, engine.MapLabel(label))
		}
		printDisplay(state)
		fmt.Print("> ")
	}
}

// printDisplay рисует две строки дисплея: ввод и результат с префиксом "=".
// Так же их рисует боевой фронт (см. контракт границы в DisplayResponse).
func printDisplay(s engine.State) {
	line := s.DisplayText
	if s.ResultText != "" {
		line = s.ResultText
	}
	fmt.Printf("  %s\n", s.DisplayText)
	fmt.Printf("= %s\n", line)
	if s.HasError {
		fmt.Println("  [ошибка: нажмите C]")
	}
}
