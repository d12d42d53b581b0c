package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// LoadImage parses the binary-text format into a Program.
//
// Each line holds one byte as a string of binary digits, optionally
// followed by a '#' comment. Blank and comment-only lines are skipped.
// Bytes are placed at successive addresses starting at 0.
func LoadImage(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}
	addr := 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.SplitN(text, "#", 2)
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrParseNumber(line)
			return
		}

		if addr >= MEMORY_SIZE {
			err = ErrImageTooLarge
			return
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo: lineno,
			Addr:   addr,
			Words:  []string{line},
			Bytes:  []byte{byte(value)},
		})
		addr++
	}

	err = scanner.Err()
	return
}
