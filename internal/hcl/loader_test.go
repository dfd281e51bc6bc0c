package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/blueprintgo/internal/compiler"
	"github.com/vk/blueprintgo/internal/model"
)

const helloSource = `
blueprint "hello" {
  variable "message" {
    type    = "string"
    default = "Hello from variable!"
  }

  node "begin" {
    kind = "BeginPlay"
  }

  node "get" {
    kind = "GetVariable"
    name = "message"
  }

  node "say" {
    kind = "Print"
  }

  link {
    from = "begin.then"
    to   = "say.exec"
  }

  link {
    from = "get.value"
    to   = "say.text"
  }
}
`

func loadSource(t *testing.T, src string) *model.BlueprintGraph {
	t.Helper()
	g, err := NewLoader().LoadBytes(context.Background(), "test.hcl", []byte(src))
	require.NoError(t, err)
	return g
}

func TestLoadBytesHelloBlueprint(t *testing.T) {
	g := loadSource(t, helloSource)

	assert.Equal(t, "hello", g.ID)

	t.Run("variable with converted default", func(t *testing.T) {
		def, ok := g.Variable("message")
		require.True(t, ok)
		assert.Equal(t, model.TypeString, def.Type)
		require.NotNil(t, def.Default)
		assert.Equal(t, model.StringValue("Hello from variable!"), *def.Default)
	})

	t.Run("nodes translated with their kinds", func(t *testing.T) {
		require.Len(t, g.Nodes, 3)
		kinds := map[model.NodeKind]int{}
		for _, n := range g.Nodes {
			kinds[n.Kind]++
		}
		assert.Equal(t, 1, kinds[model.KindBeginPlay])
		assert.Equal(t, 1, kinds[model.KindGetVariable])
		assert.Equal(t, 1, kinds[model.KindPrint])
	})

	t.Run("links resolve to real pins", func(t *testing.T) {
		require.Len(t, g.Links, 2)
		for _, l := range g.Links {
			_, ok := g.Pin(l.From)
			assert.True(t, ok)
			_, ok = g.Pin(l.To)
			assert.True(t, ok)
		}
	})

	t.Run("result compiles", func(t *testing.T) {
		_, err := compiler.Compile(g)
		assert.NoError(t, err)
	})
}

func TestLoadBytesPropertyTyping(t *testing.T) {
	g := loadSource(t, `
blueprint "typed" {
  variable "counter" {
    type = "i32"
  }

  node "set" {
    kind  = "SetVariable"
    name  = "counter"
    value = 7
  }

  node "say" {
    kind = "Print"
    text = "hi"
  }

  node "choose" {
    kind      = "Branch"
    condition = true
  }
}
`)

	byKind := map[model.NodeKind]*model.Node{}
	for _, n := range g.Nodes {
		byKind[n.Kind] = n
	}

	t.Run("variable node value converts against the declared type", func(t *testing.T) {
		v, ok := byKind[model.KindSetVariable].Property("value")
		require.True(t, ok)
		assert.Equal(t, model.IntValue(7), v)
	})

	t.Run("pin-matching attribute converts against the pin type", func(t *testing.T) {
		v, ok := byKind[model.KindPrint].Property("text")
		require.True(t, ok)
		assert.Equal(t, model.StringValue("hi"), v)

		v, ok = byKind[model.KindBranch].Property("condition")
		require.True(t, ok)
		assert.Equal(t, model.BoolValue(true), v)
	})
}

func TestLoadBytesGraphsAndPosition(t *testing.T) {
	g := loadSource(t, `
blueprint "layout" {
  graph "Helpers" {
    kind = "function"
  }

  node "begin" {
    kind     = "BeginPlay"
    position = [120, 40.5]
  }

  node "helper" {
    kind  = "Print"
    graph = "Helpers"
  }
}
`)

	t.Run("declared graph partitions are added", func(t *testing.T) {
		names := make([]string, 0, len(g.Graphs))
		for _, def := range g.Graphs {
			names = append(names, def.Name)
		}
		assert.Contains(t, names, "Helpers")
		assert.Contains(t, names, model.DefaultEventGraph)
	})

	for _, n := range g.Nodes {
		switch n.Kind {
		case model.KindBeginPlay:
			assert.Equal(t, [2]float32{120, 40.5}, n.Position)
			assert.Equal(t, model.DefaultEventGraph, n.Graph)
		case model.KindPrint:
			assert.Equal(t, "Helpers", n.Graph)
		}
	}
}

func TestLoadBytesErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			"unknown node kind",
			`blueprint "bad" {
  node "x" {
    kind = "Teleport"
  }
}`,
			"unknown node kind",
		},
		{
			"unknown variable type",
			`blueprint "bad" {
  variable "x" {
    type = "i64"
  }
}`,
			"unknown data type",
		},
		{
			"duplicate node label",
			`blueprint "bad" {
  node "x" {
    kind = "Print"
  }
  node "x" {
    kind = "Print"
  }
}`,
			"duplicate node label",
		},
		{
			"malformed pin reference",
			`blueprint "bad" {
  node "x" {
    kind = "Print"
  }
  link {
    from = "nodotref"
    to   = "x.exec"
  }
}`,
			"malformed pin reference",
		},
		{
			"unknown node in link",
			`blueprint "bad" {
  node "x" {
    kind = "Print"
  }
  link {
    from = "ghost.then"
    to   = "x.exec"
  }
}`,
			"unknown node",
		},
		{
			"unknown pin in link",
			`blueprint "bad" {
  node "x" {
    kind = "Print"
  }
  link {
    from = "x.then"
    to   = "x.missing"
  }
}`,
			"no pin",
		},
		{
			"unknown graph kind",
			`blueprint "bad" {
  graph "G" {
    kind = "shader"
  }
}`,
			"unknown kind",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().LoadBytes(context.Background(), "test.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadBytesRequiresExactlyOneBlueprint(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		_, err := NewLoader().LoadBytes(context.Background(), "test.hcl", []byte(``))
		assert.ErrorContains(t, err, "expected one blueprint block")
	})

	t.Run("two", func(t *testing.T) {
		src := `
blueprint "a" {}
blueprint "b" {}
`
		_, err := NewLoader().LoadBytes(context.Background(), "test.hcl", []byte(src))
		assert.ErrorContains(t, err, "expected one blueprint block")
	})
}

func TestLoadFromFileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.hcl")
	require.NoError(t, os.WriteFile(path, []byte(helloSource), 0o644))

	t.Run("single file", func(t *testing.T) {
		g, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "hello", g.ID)
	})

	t.Run("directory", func(t *testing.T) {
		g, err := NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, "hello", g.ID)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), t.TempDir())
		assert.ErrorContains(t, err, "no .hcl files")
	})
}
