package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gravenhold-server/internal/domain"
)

const (
	replayMagic          = `GHRP` // 4 байта
	replayVersion uint32 = 1
)

// ReplayFileHeader — точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком: нет слайсов и строк,
// только массивы и числа.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	ActionCount int32   // 4 байта
}

// ActionHeader — заголовок каждой записи действия.
type ActionHeader struct {
	Tick       int32  // 4
	ActionType uint8  // 1
	TokenLen   uint8  // 1
	PayloadLen uint16 // 2
}

// ReplayService пишет и читает файлы реплеев партий.
type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &ReplayService{SaveDir: dir}
}

// Save записывает сессию в новый файл. Возвращает путь к файлу.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d.ghrp", session.Seed, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, session); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	// 1. Глобальный заголовок
	header := ReplayFileHeader{
		Version:     replayVersion,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], replayMagic)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Действия
	for _, act := range s.Actions {
		tokenBytes := []byte(act.Token)
		if len(tokenBytes) > 255 {
			return fmt.Errorf("token too long: %d", len(tokenBytes))
		}

		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		actHeader := ActionHeader{
			Tick:       int32(act.Tick),
			ActionType: uint8(act.Action),
			TokenLen:   uint8(len(tokenBytes)),
			PayloadLen: uint16(payloadLen),
		}

		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}

		if _, err := w.Write(tokenBytes); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
