// Command seed loads questions from a JSON file into the bbolt catalogue
// consumed by the server. Input is a JSON array of questions; entries
// without an id get a fresh one.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/trivium-games/trivium/internal/catalog"
	"github.com/trivium-games/trivium/internal/models"
)

func main() {
	var (
		in  = flag.String("in", "questions.json", "JSON file with a question array")
		out = flag.String("out", "trivium.db", "catalogue file to write")
	)
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		log.Fatalf("parsing %s: %v", *in, err)
	}

	repo, err := catalog.OpenBolt(*out)
	if err != nil {
		log.Fatalf("opening catalogue %s: %v", *out, err)
	}
	defer repo.Close()

	for i, q := range questions {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			log.Fatalf("question %d: correctAnswer %d out of range for %d options", i, q.CorrectAnswer, len(q.Options))
		}
		if err := repo.Put(q); err != nil {
			log.Fatalf("storing question %d: %v", i, err)
		}
	}

	log.Printf("seeded %d questions into %s", len(questions), *out)
}
