// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


package wikimark

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderMarkdown(t *testing.T) {
	const input = "h3. Steps\n" +
		"{tip:title=Hint}Use the CLI.{tip}\n" +
		"{code:language=bash|title=run.sh}\n./run.sh\n{code}\n" +
		"done"
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	if err := RenderMarkdown(buf, doc); err != nil {
		t.Error("RenderMarkdown:", err)
	}
	const want = "### Steps\n" +
		"> [!TIP]**Hint**Use the CLI.\n" +
		"```bash\n./run.sh\n```\n" +
		"done\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("RenderMarkdown(...) (-want +got):\n%s", diff)
	}
	if got := string(AppendMarkdown(nil, doc)); got != want {
		t.Errorf("AppendMarkdown(nil, doc) = %q; want %q", got, want)
	}
}

func TestAppendNodePreservesPrefix(t *testing.T) {
	source := []byte("h1. Title\n")
	doc, err := Parse(source)
	if err != nil {
		t.Fatal(err)
	}
	got := AppendNode([]byte("prefix:"), source, doc.Nodes[0])
	const want = "prefix:# Title\n"
	if string(got) != want {
		t.Errorf("AppendNode(...) = %q; want %q", got, want)
	}
}

func TestRenderMarkdownWriteError(t *testing.T) {
	doc, err := Parse([]byte("Hello\n"))
	if err != nil {
		t.Fatal(err)
	}
	errBroken := errors.New("broken pipe")
	err = RenderMarkdown(failWriter{errBroken}, doc)
	if !errors.Is(err, errBroken) {
		t.Errorf("RenderMarkdown(...) = %v; want %v", err, errBroken)
	}
}

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}
