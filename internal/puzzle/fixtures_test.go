package puzzle

var lifeSciencesRows = []string{
	"PHOTOSYNTHESISA",
	"RGENOTYPEELLECM",
	"OLNITATUMMITOSI",
	"TCHLOROPLASTTEO",
	"EROSMOSISPHENOT",
	"IALLELEMRIBOSOM",
	"NDIFFUSIONNUCLE",
	"SYENZYMETRANSLA",
	"CHROMOSOMEHOMEO",
	"RETRANSCRIPTION",
	"IMEIOSISPROTEIN",
	"POHGENEPLASMCSN",
	"TISISOTIMOMMTLU",
	"IOODNITEIDONNAA",
	"OSYSENIPLANRTRC",
}

var lifeSciencesWords = []string{
	"MITOSIS", "MEIOSIS", "CHROMOSOME", "RIBOSOME", "ENZYME",
	"OSMOSIS", "DIFFUSION", "NUCLEOTIDE", "GENOTYPE", "PHENOTYPE",
	"MUTATION", "HOMEOSTASIS", "PHOTOSYNTHESIS", "TRANSCRIPTION", "TRANSLATION",
	"ALLELE", "PROTEIN", "CHLOROPLAST", "CELL", "GENE",
}

func lifeSciences() *Grid { return MustGrid(lifeSciencesRows...) }

// seq returns n consecutive integers starting at from, stepping by step.
func seq(from, step, n int) []int {
	out := make([]int, n)
	for k := range out {
		out[k] = from + k*step
	}
	return out
}
