package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/hscells/apirec/dataset"
	"io/ioutil"
	"log"
	"path/filepath"
	"strings"
)

var (
	name    = "apinorm"
	version = "11.Jan.2021"
	author  = "Harry Scells"
)

type args struct {
	Dir string `help:"directory of dataset csv files to normalise in place" arg:"required,positional"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

func main() {
	var args args
	arg.MustParse(&args)

	files, err := ioutil.ReadDir(args.Dir)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".csv") {
			continue
		}
		path := filepath.Join(args.Dir, f.Name())
		nonStandard, err := dataset.Normalise(path)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("normalised %s, %d records contain non-standard references", f.Name(), nonStandard)
	}
}
