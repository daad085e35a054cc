// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

// Disposer is implemented by payloads that own resources beyond their own
// memory. The owning box calls Dispose exactly once when it destroys the
// payload: on [Box.Reset], on replacement by a new installation, and on
// [Box.Recycle]. Relocation and successful [Release] transfer ownership
// and never dispose.
//
// Dispose is one-shot by construction: destruction swaps the box's active
// dispatch table away before anything else can observe the payload, so a
// payload sees at most one Dispose per installation.
type Disposer interface {
	Dispose()
}

// disposePayload runs the destroy capability of a payload, if it has one.
// v is the owning pointer to the concrete payload.
func disposePayload(v any) {
	if d, ok := v.(Disposer); ok {
		d.Dispose()
	}
}
