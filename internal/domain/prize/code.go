package prize

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
)

var ErrInvalidCode = errors.New("invalid prize code format")

// CodeAlphabet is the character set every code position is drawn from.
const CodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// group sizes of the XXX-XX-X layout
var codeGroups = []int{3, 2, 1}

var codeRegex = regexp.MustCompile(`^[0-9A-Z]{3}-[0-9A-Z]{2}-[0-9A-Z]$`)

type Code string

// ParseCode normalizes user input before validating it, so "ab1-c2-d"
// resolves to the issued "AB1-C2-D".
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return Code(""), ErrInvalidCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

type CodeGenerator interface {
	Generate() Code
}

// RandomCodeGenerator does not consult issued codes; two prizes may
// receive the same code (one in 36^6).
type RandomCodeGenerator struct {
	intN func(n int) int
}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{intN: rand.IntN}
}

func (g *RandomCodeGenerator) Generate() Code {
	var b strings.Builder
	b.Grow(8)
	for i, size := range codeGroups {
		if i > 0 {
			b.WriteByte('-')
		}
		for j := 0; j < size; j++ {
			b.WriteByte(CodeAlphabet[g.intN(len(CodeAlphabet))])
		}
	}
	return Code(b.String())
}
