// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package keyboard follows the on-screen keyboard through a host event
// source.
//
// iOS reports keyboard changes before they animate (keyboardWillShow,
// keyboardWillHide); other platforms report them afterwards
// (keyboardDidShow, keyboardDidHide). Manager hides that difference and adds
// platform-specific helpers. Tracker keeps the latest keyboard state:
//
//	src := keyboard.NewMemorySource()
//	m := keyboard.New(snap, src)
//	tr := keyboard.NewTracker(m)
//	defer tr.Close()
//
//	src.Publish(m.ShowEvent(), keyboard.Event{Height: 336, Duration: 250 * time.Millisecond})
//	st := tr.State() // {Height: 336, Visible: true, ...}
//
// Every listener registration returns a *host.Subscription that must be
// removed on teardown.
package keyboard
