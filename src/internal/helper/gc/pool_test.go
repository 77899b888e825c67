// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or use this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockBuffer is a Buffer that does not come from bytebufferpool.
type mockBuffer struct{ bytes.Buffer }

func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write byte slice",
			setup: func(buf Buffer) {
				buf.Write([]byte("CN=a"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "CN=a", buf.String())
				assert.Equal(t, 4, buf.Len())
			},
		},
		{
			name: "Fprintf",
			setup: func(buf Buffer) {
				fmt.Fprintf(buf, "%s%d", "RSA", 2048)
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "RSA2048", buf.String())
			},
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.WriteString("CN=a")
				buf.WriteByte(',')
				buf.Write([]byte("O=b"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, []byte("CN=a,O=b"), buf.Bytes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer Default.Put(buf)

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

func TestPool_PutResets(t *testing.T) {
	buf := Default.Get()
	buf.WriteString("leftover")
	Default.Put(buf)

	// The pool may or may not hand back the same buffer, but it must be empty either way.
	again := Default.Get()
	defer Default.Put(again)
	assert.Equal(t, 0, again.Len())
}

func TestPool_PutForeignBuffer(t *testing.T) {
	m := &mockBuffer{}
	m.WriteString("kept")
	assert.NotPanics(t, func() { Default.Put(m) })
	assert.Equal(t, "kept", m.String(), "foreign buffers are dropped untouched")
}

func TestPool_Concurrent(t *testing.T) {
	const workers = 32

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func(id int) {
			defer wg.Done()
			buf := Default.Get()
			defer Default.Put(buf)

			want := fmt.Sprintf("worker-%d", id)
			buf.WriteString(want)
			assert.Equal(t, want, buf.String())
		}(i)
	}
	wg.Wait()
}
