// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package chunk provides the fixed-capacity output buffer that every certificate
// extractor writes into, together with the tri-state [Result] those extractors return.
//
// A [Buffer] never grows: its capacity is fixed when it is created or wrapped, and
// writers check the capacity before committing bytes, so the hot path performs no
// allocation. The only writers that may leave a partial value behind are the
// incremental ones (the oneline DN formatter and the [GREASE] filter), and they
// document it.
//
// [GREASE]: https://www.rfc-editor.org/rfc/rfc8701
package chunk
