package pystub

import (
	"fmt"

	"github.com/MusicalNinjas/pyigen/symbol"
	"github.com/MusicalNinjas/pyigen/tool/pysig"
)

// GenFuncEntry generates the stub entry for one native callable:
//
//	def <name>(<untyped params>):
//	    """<doc>"""
//
// The symbol must carry a text signature; the dumper guarantees one for
// every recognized callable kind, so an empty Sig means the caller bypassed
// the dump.
func GenFuncEntry(sym *symbol.Symbol) (string, error) {
	if sym.Sig == "" {
		return "", fmt.Errorf("%s: %w", sym.Name, ErrMissingSignature)
	}
	sig := pysig.Render(sym.Sig, sym.Doc)
	return fmt.Sprintf("def %s%s:\n%s\n", sym.Name, sig, docBlock(sym.Doc)), nil
}
