package openglhelper

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// glErrorNames maps GL error codes to their enum names
var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	gl.STACK_UNDERFLOW:               "GL_STACK_UNDERFLOW",
	gl.STACK_OVERFLOW:                "GL_STACK_OVERFLOW",
}

// CheckError drains the GL error queue and returns every pending error as one, or nil
func CheckError(op string) error {
	var codes []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		name, ok := glErrorNames[code]
		if !ok {
			name = fmt.Sprintf("0x%04x", code)
		}
		codes = append(codes, name)
	}

	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", op, strings.Join(codes, ", "))
}
