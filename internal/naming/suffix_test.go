package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamSuffix(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		expected  string
	}{
		{"no params", "void baz()", ""},
		{"no parens", "void baz", ""},
		{"single primitive", "void baz(int)", "_INT"},
		{"two primitives", "void baz(int,long)", "_INT_LONG"},
		{"spaces after comma", "void baz(int, long)", "_INT_LONG"},
		{"qualified type keeps simple name", "void baz(java.lang.String)", "_STRING"},
		{"array marker", "void baz(int[])", "_INT_ARRAY"},
		{"array of qualified type", "void baz(java.lang.String[])", "_STRING_ARRAY"},
		{"generic brackets flattened", "void baz(List<String>)", "_LIST_STRING"},
		{"mixed", "Map<K,V> merge(java.util.Map,boolean)", "_MAP_BOOLEAN"},
		{"camel case param", "void baz(ServerLevel)", "_SERVER_LEVEL"},
		{"tokens all sanitize away", "void baz(,)", "_"},
		{"blank-only parameter region", "void baz( )", "_"},
		{"full signature with return type", "net.minecraft.world.item.ItemStack copy(net.minecraft.world.item.ItemStack)", "_ITEM_STACK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParamSuffix(tt.signature))
		})
	}
}
