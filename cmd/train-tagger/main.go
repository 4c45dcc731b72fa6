// train-tagger builds a tagging model file from a training corpus of
// word/TAG lines, one sentence per line:
//
//	the/DT dog/NN barks/VB
//
// The resulting model file is what the ngram-pos analyzer's crf-prefix
// field points at.
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/lexcore/featex/pkg/featex/sequence"
)

func main() {
	var (
		dataPath = flag.String("data", "", "Training file of word/TAG sentences (required)")
		outPath  = flag.String("out", "", "Output model file (required)")
	)
	flag.Parse()

	if *dataPath == "" {
		log.Fatal("--data required")
	}
	if *outPath == "" {
		log.Fatal("--out required")
	}

	f, err := os.Open(*dataPath)
	if err != nil {
		log.Fatal("Failed to open training data: ", err)
	}
	defer f.Close()

	trainer := sequence.NewTrainer()
	sentences := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var words, tags []string
		ok := true
		for _, pair := range strings.Fields(line) {
			slash := strings.LastIndex(pair, "/")
			if slash <= 0 || slash == len(pair)-1 {
				ok = false
				break
			}
			words = append(words, pair[:slash])
			tags = append(tags, pair[slash+1:])
		}
		if !ok {
			log.Printf("skipping malformed line: %s", line)
			continue
		}

		if err := trainer.Add(words, tags); err != nil {
			log.Fatal("Failed to add sentence: ", err)
		}
		sentences++
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("Failed to read training data: ", err)
	}
	if sentences == 0 {
		log.Fatal("No training sentences found")
	}

	if err := trainer.Save(context.Background(), *outPath); err != nil {
		log.Fatal("Failed to save model: ", err)
	}
	log.Printf("trained on %d sentences, model written to %s", sentences, *outPath)
}
