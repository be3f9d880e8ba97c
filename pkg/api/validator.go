package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p EnemyPayload) Validate() error {
	if p.EnemyID == "" {
		return errors.New("enemyId is required")
	}
	return nil
}

func (p CardPayload) Validate() error {
	if p.CardID == "" {
		return errors.New("cardId is required")
	}
	return nil
}

func (p AnswerPayload) Validate() error {
	if p.Option != "A" && p.Option != "B" {
		return errors.New("option must be A or B")
	}
	return nil
}

func (p AdjustPayload) Validate() error {
	if p.Delta != 1 && p.Delta != -1 {
		return errors.New("delta must be +1 or -1")
	}
	return nil
}

func (p UsePayload) Validate() error {
	if p.CardID == "" {
		return errors.New("cardId is required")
	}
	if p.Qty < 0 {
		return errors.New("qty cannot be negative")
	}
	return nil
}
