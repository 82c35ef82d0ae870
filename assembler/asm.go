/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package assembler

import "github.com/pkg/errors"

// ErrNotImplemented is returned by Assemble. Codegen from a token
// stream to machine code was never finished in the original source
// this front end was ported from — its lexer worked, but
// assemble_file()'s body was a comment listing the remaining steps
// (preprocess, parse to an AST, recursive-descent codegen) with no
// implementation. This port keeps that boundary rather than inventing
// a code generator with no reference to ground it on.
var ErrNotImplemented = errors.New("assembler: codegen not implemented")

// Assemble lexes source and would emit CHIP-8 machine code for it.
// Lexing is real; codegen is not, and always returns
// ErrNotImplemented once the token stream lexes cleanly.
func Assemble(source string) ([]byte, error) {
	if _, err := NewLexer(source).Lex(); err != nil {
		return nil, err
	}
	return nil, ErrNotImplemented
}
