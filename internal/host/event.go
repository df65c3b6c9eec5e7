package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EventKind тип входного события
type EventKind string

const (
	EventPointerDown EventKind = "pointer_down"
	EventKeyDown     EventKind = "key_down"
	EventLook        EventKind = "look" // перемещение/поворот наблюдателя
	EventQuit        EventKind = "quit"
)

// Event входное событие окна
type Event struct {
	Kind      EventKind   `yaml:"kind"`
	Button    int         `yaml:"button,omitempty"`
	X         int         `yaml:"x,omitempty"`
	Y         int         `yaml:"y,omitempty"`
	Key       string      `yaml:"key,omitempty"`
	Position  *[3]float64 `yaml:"position,omitempty"`
	Direction *[3]float64 `yaml:"direction,omitempty"`
}

// Frame события одного кадра
type Frame struct {
	Events []Event `yaml:"events"`
}

// Script записанная последовательность кадров
type Script struct {
	Frames []Frame `yaml:"frames"`
}

// ParseScript разбирает YAML-сценарий и проверяет события
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("не удалось разобрать сценарий: %w", err)
	}

	for i, frame := range script.Frames {
		for j, ev := range frame.Events {
			if err := ev.validate(); err != nil {
				return nil, fmt.Errorf("кадр %d, событие %d: %w", i, j, err)
			}
		}
	}

	return &script, nil
}

// LoadScript читает сценарий из файла
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать сценарий %s: %w", path, err)
	}
	return ParseScript(data)
}

func (e Event) validate() error {
	switch e.Kind {
	case EventPointerDown:
		if e.Button <= 0 {
			return fmt.Errorf("pointer_down без кнопки")
		}
	case EventKeyDown:
		if e.Key == "" {
			return fmt.Errorf("key_down без клавиши")
		}
	case EventLook:
		if e.Position == nil && e.Direction == nil {
			return fmt.Errorf("look без позиции и направления")
		}
	case EventQuit:
	default:
		return fmt.Errorf("неизвестный тип события %q", e.Kind)
	}
	return nil
}
