package emit

import (
	"encoding/binary"

	"github.com/gogpu/spirv"
)

// instruction is one encoded SPIR-V instruction: the opcode plus its
// operand words (result type id, result id, operands).
type instruction struct {
	opcode spirv.Op
	words  []uint32
}

// builder accumulates the operand words of one instruction.
type builder struct {
	words []uint32
}

func newBuilder() *builder {
	return &builder{words: make([]uint32, 0, 8)}
}

func (b *builder) addWord(word uint32) {
	b.words = append(b.words, word)
}

// addString appends a null-terminated UTF-8 string padded to a word
// boundary.
func (b *builder) addString(s string) {
	bytes := []byte(s)
	bytes = append(bytes, 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}

	for i := 0; i < len(bytes); i += 4 {
		word := uint32(bytes[i]) |
			uint32(bytes[i+1])<<8 |
			uint32(bytes[i+2])<<16 |
			uint32(bytes[i+3])<<24
		b.words = append(b.words, word)
	}
}

func (b *builder) build(opcode spirv.Op) instruction {
	return instruction{opcode: opcode, words: b.words}
}

// encode prefixes the operand words with the combined word-count/opcode
// word.
func (i instruction) encode() []uint32 {
	wordCount := uint32(len(i.words) + 1)
	result := make([]uint32, 0, wordCount)
	result = append(result, (wordCount<<16)|uint32(i.opcode))
	result = append(result, i.words...)

	return result
}

func countWords(instructions []instruction) int {
	count := 0
	for _, in := range instructions {
		count += len(in.words) + 1
	}

	return count
}

func writeInstructions(buffer []byte, offset int, instructions []instruction) int {
	for _, in := range instructions {
		for _, word := range in.encode() {
			binary.LittleEndian.PutUint32(buffer[offset:], word)
			offset += 4
		}
	}

	return offset
}
