package host

import (
	"context"

	"github.com/annel0/blockcraft/internal/logging"
)

// Source источник событий: одна порция событий на кадр.
// ok == false означает, что событий больше не будет.
type Source interface {
	Poll() (events []Event, ok bool)
}

// Handler программа, управляемая циклом кадров
type Handler interface {
	HandleEvent(ev Event)
	Redraw() error
}

// ScriptSource воспроизводит сценарий кадр за кадром
type ScriptSource struct {
	script *Script
	next   int
}

// NewScriptSource создаёт источник из сценария
func NewScriptSource(script *Script) *ScriptSource {
	return &ScriptSource{script: script}
}

// Poll возвращает события следующего кадра
func (s *ScriptSource) Poll() ([]Event, bool) {
	if s.script == nil || s.next >= len(s.script.Frames) {
		return nil, false
	}
	frame := s.script.Frames[s.next]
	s.next++
	return frame.Events, true
}

// Run крутит цикл: опрос событий, синхронная обработка, перерисовка.
// Завершается по событию quit (после перерисовки кадра), исчерпанию источника
// или отмене контекста. Возвращает число отрисованных кадров.
func Run(ctx context.Context, src Source, h Handler) (int, error) {
	frames := 0

	for {
		select {
		case <-ctx.Done():
			logging.Info("Цикл кадров остановлен: %v", ctx.Err())
			return frames, nil
		default:
		}

		events, ok := src.Poll()
		if !ok {
			return frames, nil
		}

		logging.Trace("Кадр %d: событий %d", frames+1, len(events))

		quit := false
		for _, ev := range events {
			if ev.Kind == EventQuit {
				quit = true
				continue
			}
			h.HandleEvent(ev)
		}

		if err := h.Redraw(); err != nil {
			return frames, err
		}
		frames++

		if quit {
			logging.Debug("Получено событие quit на кадре %d", frames)
			return frames, nil
		}
	}
}
