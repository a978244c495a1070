package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("item index cannot be negative")
	}
	return nil
}

func (p LevelUpPayload) Validate() error {
	if p.Choice == "" {
		return errors.New("choice is required")
	}
	return nil
}
