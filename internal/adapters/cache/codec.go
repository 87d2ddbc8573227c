package cache

import (
	"bytes"
	"encoding/binary"
	"errors"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/comma/internal/core/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

// State file layout: magic, big-endian xxhash64 of the payload, payload.
// The payload is a sequence of length-delimited entry messages under field 1.
var magic = []byte("CMA1")

const (
	checksumLen = 8
	headerLen   = 4 + checksumLen
)

const (
	fieldEntry protowire.Number = 1

	fieldCommand    protowire.Number = 1
	fieldDerivation protowire.Number = 2
	fieldPath       protowire.Number = 3
)

var (
	errBadMagic     = errors.New("unrecognized state file header")
	errBadChecksum  = errors.New("state file checksum mismatch")
	errTruncated    = errors.New("state file is truncated")
	errNoCommand    = errors.New("entry without command")
	errNoDerivation = errors.New("entry without derivation")
)

func encode(entries map[string]domain.CacheEntry) []byte {
	commands := make([]string, 0, len(entries))
	for command := range entries {
		commands = append(commands, command)
	}
	slices.Sort(commands)

	var payload []byte
	for _, command := range commands {
		entry := entries[command]

		var msg []byte
		msg = protowire.AppendTag(msg, fieldCommand, protowire.BytesType)
		msg = protowire.AppendString(msg, command)
		msg = protowire.AppendTag(msg, fieldDerivation, protowire.BytesType)
		msg = protowire.AppendString(msg, entry.Derivation)
		if entry.HasPath() {
			msg = protowire.AppendTag(msg, fieldPath, protowire.BytesType)
			msg = protowire.AppendString(msg, entry.Path)
		}

		payload = protowire.AppendTag(payload, fieldEntry, protowire.BytesType)
		payload = protowire.AppendBytes(payload, msg)
	}

	out := make([]byte, 0, headerLen+len(payload))
	out = append(out, magic...)
	out = binary.BigEndian.AppendUint64(out, xxhash.Sum64(payload))
	return append(out, payload...)
}

func decode(data []byte) (map[string]domain.CacheEntry, error) {
	entries := make(map[string]domain.CacheEntry)
	if len(data) == 0 {
		return entries, nil
	}

	if len(data) < headerLen {
		return nil, errTruncated
	}
	if !bytes.Equal(data[:len(magic)], magic) {
		return nil, errBadMagic
	}

	payload := data[headerLen:]
	if binary.BigEndian.Uint64(data[len(magic):headerLen]) != xxhash.Sum64(payload) {
		return nil, errBadChecksum
	}

	for len(payload) > 0 {
		num, typ, n := protowire.ConsumeTag(payload)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		payload = payload[n:]

		if num != fieldEntry || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, payload)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			payload = payload[n:]
			continue
		}

		msg, n := protowire.ConsumeBytes(payload)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		payload = payload[n:]

		command, entry, err := decodeEntry(msg)
		if err != nil {
			return nil, err
		}
		entries[command] = entry
	}

	return entries, nil
}

func decodeEntry(msg []byte) (string, domain.CacheEntry, error) {
	var (
		command string
		entry   domain.CacheEntry
	)

	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return "", entry, protowire.ParseError(n)
		}
		msg = msg[n:]

		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return "", entry, protowire.ParseError(n)
			}
			msg = msg[n:]
			continue
		}

		value, n := protowire.ConsumeString(msg)
		if n < 0 {
			return "", entry, protowire.ParseError(n)
		}
		msg = msg[n:]

		switch num {
		case fieldCommand:
			command = value
		case fieldDerivation:
			entry.Derivation = value
		case fieldPath:
			entry.Path = value
		}
	}

	if command == "" {
		return "", entry, errNoCommand
	}
	if entry.Derivation == "" {
		return "", entry, errNoDerivation
	}
	return command, entry, nil
}
