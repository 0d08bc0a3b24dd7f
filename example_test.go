package dgshdetect_test

import (
	"fmt"

	"github.com/dgsh-tools/dgshdetect"
)

// ExampleClassify shows the one-call surface over a file on disk.
func ExampleClassify() {
	ok, err := dgshdetect.Classify("/usr/local/bin/paste-files")
	if err != nil {
		fmt.Printf("inspect failed: %v\n", err)
		return
	}
	if ok {
		fmt.Println("dgsh compatible")
	}
}

// ExampleDetector_ClassifyBytes classifies buffers already in memory.
func ExampleDetector_ClassifyBytes() {
	d := dgshdetect.Detector{}
	fmt.Println(d.ClassifyBytes([]byte("#!/usr/bin/env dgsh\n")))
	fmt.Println(d.ClassifyBytes([]byte("#!/bin/sh\necho hello\n")))
	// Output:
	// true
	// false
}

// ExampleDetectKind shows the dispatch step on its own.
func ExampleDetectKind() {
	fmt.Println(dgshdetect.DetectKind([]byte("#!/bin/sh\n")))
	fmt.Println(dgshdetect.DetectKind([]byte{0x7f, 'E', 'L', 'F', 2}))
	fmt.Println(dgshdetect.DetectKind([]byte("plain text")))
	// Output:
	// script
	// elf
	// unknown
}

// ExampleNew configures the script scan window.
func ExampleNew() {
	d := dgshdetect.New(dgshdetect.WithScanWindow(64))
	fmt.Println(d.ClassifyBytes([]byte("#!/bin/bash --dgsh\n")))
	// Output:
	// true
}
