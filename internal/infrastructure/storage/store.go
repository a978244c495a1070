package storage

import (
	"bytes"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"gravenhold-server/pkg/logger"

	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound - сохранение не существует.
	ErrNotFound = errors.New("storage: save not found")
	// ErrCorrupt - сохранение есть, но прочитать его нельзя.
	ErrCorrupt = errors.New("storage: save corrupted")
)

const (
	saveMagic          = `GHSV` // 4 байта
	saveVersion uint32 = 1
)

// SaveHeader - бинарный конверт вокруг JSON-состояния партии.
// binary.Write пишет структуру целиком: только массивы и числа.
type SaveHeader struct {
	Magic     [4]byte // 4 байта
	Version   uint32  // 4 байта
	Seed      int64   // 8 байт
	Timestamp int64   // 8 байт
	StateLen  uint32  // 4 байта
}

// Store хранит сохранения партий в SQLite.
type Store struct {
	db *sql.DB
}

// Open открывает (и при необходимости создает) базу сохранений.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open save db: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS saves (
		slot       TEXT NOT NULL,
		player_id  TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		blob       BLOB NOT NULL,
		PRIMARY KEY (slot, player_id)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init save schema: %w", err)
	}

	logger.Log.WithField("path", path).Info("Save store opened.")
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save упаковывает состояние партии в конверт и кладет в слот.
// Повторное сохранение в тот же слот перезаписывает прежнее.
func (s *Store) Save(slot, playerID string, seed int64, state []byte) error {
	header := SaveHeader{
		Version:   saveVersion,
		Seed:      seed,
		Timestamp: time.Now().Unix(),
		StateLen:  uint32(len(state)),
	}
	copy(header.Magic[:], saveMagic)

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write save header: %w", err)
	}
	buf.Write(state)

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO saves (slot, player_id, created_at, blob) VALUES (?, ?, ?, ?)`,
		slot, playerID, header.Timestamp, buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("write save row: %w", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"slot":      slot,
		"player_id": playerID,
		"bytes":     buf.Len(),
	}).Info("Game saved.")
	return nil
}

// Load достает состояние партии из слота.
// Отсутствие слота - ErrNotFound; битый конверт - ErrCorrupt.
func (s *Store) Load(slot, playerID string) (state []byte, seed int64, err error) {
	var blob []byte
	row := s.db.QueryRow(`SELECT blob FROM saves WHERE slot = ? AND player_id = ?`, slot, playerID)
	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("read save row: %w", err)
	}

	r := bytes.NewReader(blob)
	var header SaveHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, 0, fmt.Errorf("%w: short header", ErrCorrupt)
	}

	if string(header.Magic[:]) != saveMagic {
		return nil, 0, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	if header.Version != saveVersion {
		return nil, 0, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, header.Version)
	}
	if int(header.StateLen) != r.Len() {
		return nil, 0, fmt.Errorf("%w: state length mismatch", ErrCorrupt)
	}

	state = make([]byte, header.StateLen)
	if _, err := r.Read(state); err != nil {
		return nil, 0, fmt.Errorf("%w: short state", ErrCorrupt)
	}

	return state, header.Seed, nil
}
