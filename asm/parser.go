// This file is part of AdventOfCode2019 - https://github.com/alanbriolat/AdventOfCode2019
//
// Copyright 2019 The AdventOfCode2019 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alanbriolat/AdventOfCode2019/vm"
	"github.com/alecthomas/participle/v2/lexer"
)

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s,]+`},
	{Name: "Directive", Pattern: `\.[a-zA-Z]+`},
	{Name: "Label", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*:`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[-+]?[0-9]+`},
	{Name: "Mode", Pattern: `[#@]`},
})

var (
	tokComment    = asmLexer.Symbols()["Comment"]
	tokWhitespace = asmLexer.Symbols()["Whitespace"]
	tokDirective  = asmLexer.Symbols()["Directive"]
	tokLabel      = asmLexer.Symbols()["Label"]
	tokIdent      = asmLexer.Symbols()["Ident"]
	tokInt        = asmLexer.Symbols()["Int"]
	tokMode       = asmLexer.Symbols()["Mode"]
)

type labelSite struct {
	pos     lexer.Position
	address int
	offset  vm.Word
}

type label struct {
	labelSite
	defined bool
	uses    []labelSite
}

type parser struct {
	words  vm.Program
	toks   []lexer.Token
	next   int
	labels map[string]*label
	consts map[string]vm.Word
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]*label),
		consts: make(map[string]vm.Word),
	}
}

func (p *parser) error(pos lexer.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(v vm.Word) {
	p.words = append(p.words, v)
}

func (p *parser) peek() *lexer.Token {
	if p.next >= len(p.toks) {
		return nil
	}
	return &p.toks[p.next]
}

func (p *parser) scan() *lexer.Token {
	t := p.peek()
	if t != nil {
		p.next++
	}
	return t
}

// lex reads all significant tokens from r.
func (p *parser) lex(name string, r io.Reader) {
	l, err := asmLexer.Lex(name, r)
	if err != nil {
		p.error(lexer.Position{Filename: name}, err.Error())
		return
	}
	for {
		t, err := l.Next()
		if err != nil {
			pos := t.Pos
			msg := err.Error()
			if e, ok := err.(interface {
				Position() lexer.Position
				Message() string
			}); ok {
				pos, msg = e.Position(), e.Message()
			}
			p.error(pos, msg)
			return
		}
		if t.EOF() {
			return
		}
		if t.Type == tokComment || t.Type == tokWhitespace {
			continue
		}
		p.toks = append(p.toks, t)
	}
}

// offset returns the signed offset glued to the right of t, if any.
func (p *parser) offset(t *lexer.Token) (vm.Word, bool) {
	n := p.peek()
	if n == nil || n.Type != tokInt || (n.Value[0] != '+' && n.Value[0] != '-') ||
		n.Pos.Offset != t.Pos.Offset+len(t.Value) {
		return 0, false
	}
	p.scan()
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		p.error(n.Pos, err.Error())
	}
	return vm.Word(v), true
}

// value parses an integer literal, constant or label reference and writes it
// at the current address. Label references are resolved after parsing.
func (p *parser) value(t *lexer.Token) {
	switch t.Type {
	case tokInt:
		v, err := strconv.ParseInt(t.Value, 10, 64)
		if err != nil {
			p.error(t.Pos, err.Error())
		}
		p.write(vm.Word(v))
	case tokIdent:
		off, _ := p.offset(t)
		if c, ok := p.consts[t.Value]; ok {
			p.write(c + off)
			return
		}
		lbl := p.labels[t.Value]
		if lbl == nil {
			lbl = &label{labelSite: labelSite{pos: t.Pos}}
			p.labels[t.Value] = lbl
		}
		lbl.uses = append(lbl.uses, labelSite{t.Pos, len(p.words), off})
		p.write(0)
	default:
		p.error(t.Pos, "expected value, got "+strconv.Quote(t.Value))
		p.write(0)
	}
}

// constant parses an integer literal or constant.
func (p *parser) constant(directive *lexer.Token) (vm.Word, bool) {
	t := p.scan()
	if t == nil {
		p.error(directive.Pos, directive.Value+": missing value")
		return 0, false
	}
	switch t.Type {
	case tokInt:
		v, err := strconv.ParseInt(t.Value, 10, 64)
		if err != nil {
			p.error(t.Pos, err.Error())
			return 0, false
		}
		return vm.Word(v), true
	case tokIdent:
		if c, ok := p.consts[t.Value]; ok {
			return c, true
		}
		p.error(t.Pos, directive.Value+": undefined constant "+t.Value)
	default:
		p.error(t.Pos, directive.Value+": expected integer or constant, got "+strconv.Quote(t.Value))
	}
	return 0, false
}

func (p *parser) instruction(t *lexer.Token, op vm.Opcode) {
	addr := len(p.words)
	p.write(vm.Word(op))
	scale := vm.Word(100)
	n := op.Arity()
	for k := 0; k < n; k++ {
		a := p.scan()
		if a == nil {
			p.error(t.Pos, t.Value+": expected "+strconv.Itoa(n)+" parameters, got "+strconv.Itoa(k))
			return
		}
		mode := vm.Position
		if a.Type == tokMode {
			if a.Value == "#" {
				mode = vm.Immediate
			} else {
				mode = vm.Relative
			}
			if k == n-1 && mode == vm.Immediate && op.Writes() {
				p.error(a.Pos, t.Value+": immediate mode write target")
			}
			if a = p.scan(); a == nil {
				p.error(t.Pos, t.Value+": missing parameter value")
				return
			}
		}
		p.words[addr] += vm.Word(mode) * scale
		scale *= 10
		p.value(a)
	}
}

func (p *parser) define(t *lexer.Token) {
	n := strings.TrimSuffix(t.Value, ":")
	if _, ok := p.consts[n]; ok {
		p.error(t.Pos, "label redefinition: "+n+" is a constant")
		return
	}
	lbl := p.labels[n]
	if lbl == nil {
		lbl = &label{}
		p.labels[n] = lbl
	} else if lbl.defined {
		p.error(t.Pos, "label redefinition: "+n+", previous definition here: "+lbl.pos.String())
		return
	}
	lbl.pos, lbl.address, lbl.defined = t.Pos, len(p.words), true
}

func (p *parser) directive(t *lexer.Token) {
	switch t.Value {
	case ".dat":
		a := p.scan()
		if a == nil {
			p.error(t.Pos, ".dat: missing value")
			return
		}
		p.value(a)
	case ".org":
		v, ok := p.constant(t)
		if !ok {
			return
		}
		if int(v) < len(p.words) {
			p.error(t.Pos, ".org: address "+strconv.FormatInt(int64(v), 10)+" is behind current address "+strconv.Itoa(len(p.words)))
			return
		}
		for len(p.words) < int(v) {
			p.write(0)
		}
	case ".equ":
		n := p.scan()
		if n == nil || n.Type != tokIdent {
			p.error(t.Pos, ".equ: expected identifier")
			return
		}
		if _, ok := p.labels[n.Value]; ok {
			p.error(n.Pos, ".equ: redefinition of "+n.Value+", previously defined or used as a label")
			return
		}
		if v, ok := p.constant(t); ok {
			p.consts[n.Value] = v
		}
	default:
		p.error(t.Pos, "unknown directive: "+t.Value)
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	p.lex(name, r)
	for t := p.scan(); t != nil; t = p.scan() {
		switch t.Type {
		case tokLabel:
			p.define(t)
		case tokDirective:
			p.directive(t)
		case tokIdent:
			if op, ok := mnemonic(t.Value); ok {
				p.instruction(t, op)
			} else {
				p.value(t)
			}
		case tokInt:
			p.value(t)
		default:
			p.error(t.Pos, "unexpected "+strconv.Quote(t.Value))
		}
	}

	// write labels, in name order for reproducible errors
	names := make([]string, 0, len(p.labels))
	for n := range p.labels {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		l := p.labels[n]
		if !l.defined {
			p.error(l.uses[0].pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.words[u.address] = vm.Word(l.address) + u.offset
		}
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
