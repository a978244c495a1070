package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gravenhold-server/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != replayMagic {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != replayVersion {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, replayVersion)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Actions:   make([]domain.ReplayAction, header.ActionCount),
	}

	// 2. Действия
	for i := 0; i < int(header.ActionCount); i++ {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, err
		}

		act := domain.ReplayAction{
			Tick:   int(ah.Tick),
			Action: domain.ActionType(ah.ActionType),
		}

		tokenBuf := make([]byte, ah.TokenLen)
		if _, err := io.ReadFull(r, tokenBuf); err != nil {
			return nil, err
		}
		act.Token = string(tokenBuf)

		if ah.PayloadLen > 0 {
			act.Payload = make([]byte, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, err
			}
		} else {
			act.Payload = json.RawMessage{}
		}

		session.Actions[i] = act
	}

	return session, nil
}
