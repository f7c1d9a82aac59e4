package jcolor

import (
	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// acquireParser returns a pooled parser. Values it produces are only valid
// until releaseParser.
func acquireParser() *fastjson.Parser {
	return parserPool.Get()
}

func releaseParser(p *fastjson.Parser) {
	if p == nil {
		return
	}
	parserPool.Put(p)
}
