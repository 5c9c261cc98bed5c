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


package normhtml

import "testing"

func TestNormalizeHTML(t *testing.T) {
	tests := []struct {
		b    string
		want string
	}{
		{"<p>a  \t b</p>", "<p>a b</p>"},
		{" <p>a  b</p>\n", "<p>a b</p>"},
		{"<h1>\n  Title </h1>\n<p>x</p>", "<h1>Title</h1><p>x</p>"},
		{"<blockquote>\n<p>[!INFO]X</p>\n</blockquote>\n", "<blockquote><p>[!INFO]X</p></blockquote>"},
		{"<pre><code>a  b\n\tc\n</code></pre>\n", "<pre><code>a  b\n\tc\n</code></pre>"},
		{"<em>a  b</em> ", "<em>a b</em> "},
		{"a<br />\nb", "a<br>b"},
		{`<code lang="go" CLASS="language-go">x</code>`, `<code class="language-go" lang="go">x</code>`},
		{"&forall;&amp;&#39;", "∀&amp;&apos;"},
	}
	for _, test := range tests {
		if got := NormalizeHTML([]byte(test.b)); string(got) != test.want {
			t.Errorf("NormalizeHTML(%q) = %q; want %q", test.b, got, test.want)
		}
	}
}
