// Copyright (c) 2026 Mariusz Górski. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"path/filepath"

	"github.com/mgorsk1/great-expectations/pkg/suite"
)

// ResolveBatchKwargs determines the batch descriptor rendered into the
// notebook header. An explicit override always wins. Otherwise the suite's
// citations are consulted: no citations at all falls back to the (absent)
// override, citations that never recorded batch kwargs yield nil, and
// otherwise the most recent recorded descriptor is used. The result is
// always normalized via FixPathInBatchKwargs; nil means no descriptor could
// be determined and the header renders an empty one.
func ResolveBatchKwargs(s *suite.Suite, override *suite.Dict) *suite.Dict {
	if override != nil {
		return FixPathInBatchKwargs(override)
	}
	if len(s.Citations()) == 0 {
		return FixPathInBatchKwargs(override)
	}
	cited := s.CitationsWithBatchKwargs()
	if len(cited) == 0 {
		return nil
	}
	return FixPathInBatchKwargs(cited[len(cited)-1].BatchKwargs)
}

// FixPathInBatchKwargs rewrites a relative path entry so it resolves from
// the generated notebook's location, which sits two directory levels below
// the project root the stored path is relative to. Absolute paths pass
// through untouched. The input mapping is copied, never modified.
func FixPathInBatchKwargs(kwargs *suite.Dict) *suite.Dict {
	if kwargs == nil {
		return nil
	}
	out := kwargs.Copy()
	if raw, ok := out.Get("path"); ok {
		if path, ok := raw.(string); ok && !filepath.IsAbs(path) {
			out.Set("path", filepath.Join("..", "..", path))
		}
	}
	return out
}
