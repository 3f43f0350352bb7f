// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console application runtime.
//
// It checks that the vector database answers, then hands the terminal over
// to the UI until the user exits.
package client
