// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the member's engine state, registers the key package with the
// rendezvous server and hands control to the chat console while background
// polling keeps groups up to date.
package client
