package registry

import "gslgen/core/chem"

// builtinClasses returns the built-in lipid class catalog: ceramides,
// sphingomyelin, sulfatides and the glycosphingolipid series from
// hexosylceramide up to GP1 and the extended neolacto chains. Headgroup
// formulas are dehydrated residues; the ceramide backbone and the
// glycosidic water losses are accounted for during assembly.
func builtinClasses() []*LipidClassDef {
	return []*LipidClassDef{
		{
			Name:               "Cer",
			Headgroup:          chem.Count{},
			MinCharge:          1,
			MaxCharge:          1,
			RecommendedCharges: []int{1},
			MWRange:            "500-750",
			Description:        "HO-",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
			}.build(),
		},
		{
			Name:               "doxCer",
			Headgroup:          chem.Count{},
			MinCharge:          1,
			MaxCharge:          1,
			RecommendedCharges: []int{1},
			MWRange:            "480-730",
			Description:        "headless, 1-deoxy-Ceramide",
			Rules: ruleSet{
				backbone: doxLCBPositiveRules,
			}.build(),
		},
		{
			Name:               "SM",
			Headgroup:          chem.NewCount(map[chem.Element]int{chem.Carbon: 5, chem.Hydrogen: 12, chem.Nitrogen: 1, chem.Oxygen: 3, chem.Phosphorus: 1}),
			Phosphates:         1,
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1, 2},
			MWRange:            "650-900",
			Description:        "Phosphocholine-Cer (Sphingomyelin)",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posIons: []FragmentRule{
					posIon("Phosphocholine", chem.NewCount(map[chem.Element]int{chem.Carbon: 5, chem.Hydrogen: 15, chem.Nitrogen: 1, chem.Oxygen: 4, chem.Phosphorus: 1})),
					posIon("Phosphocholine-H2O", chem.NewCount(map[chem.Element]int{chem.Carbon: 5, chem.Hydrogen: 13, chem.Nitrogen: 1, chem.Oxygen: 3, chem.Phosphorus: 1})),
				},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "Hex",
			Headgroup:          formula(6, 10, 0, 5),
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "600-900",
			Description:        "β-D-Glc- or β-D-Gal-linked Ceramide (Hexosylceramide)",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-Hex,162)", formula(6, 10, 0, 5)},
					{"HG(-Hex,180)", formula(6, 12, 0, 6)},
					{"HG(-Hex,198)", formula(6, 14, 0, 7)},
				},
				posIons:     hexOxoniumPair(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "Lac",
			Headgroup:          formula(12, 20, 0, 10),
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "700-800",
			Description:        "Galβ1-4Glc-Cer (Lactosyl-Ceramide)",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-Hex2,342)", formula(12, 22, 0, 11)},
					{"HG(-Hex2,360)", formula(12, 24, 0, 12)},
					{"HG(-Hex2,324)", formula(12, 20, 0, 10)},
				},
				posIons: concat(hexOxoniumPair(), []FragmentRule{
					posIon("HG(Hex2,324)", formula(12, 20, 0, 10)),
					posIon("HG(Hex2,342)", formula(12, 22, 0, 11)),
				}),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "LC3",
			Headgroup:          formula(20, 33, 1, 15),
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "900-1000",
			Description:        "GlcNAcβ1-3Galβ1-4Glc-Cer (Lacto/neoLacto-series), isobaric to GA2",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
					{"HG(-HexNAcHex,383)", formula(14, 25, 1, 11)},
					{"HG(-HexNAcHex,401)", formula(14, 27, 1, 12)},
					{"HG(-HexNAcHex2,545)", formula(20, 35, 1, 16)},
					{"HG(-HexNAcHex2,563)", formula(20, 37, 1, 17)},
				},
				posIons: concat(hexOxoniumPair(), []FragmentRule{
					posIon("HG(Hex2,324)", formula(12, 20, 0, 10)),
					posIon("HG(Hex2,342)", formula(12, 22, 0, 11)),
				}, hexNAcOxoniumSeries()),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "LC4",
			Headgroup:          formula(26, 43, 1, 20),
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "1100-1200",
			Description:        "Galβ1-3GlcNAcβ1-3Galβ1-4Glc-Cer (Lacto-series)",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
					{"HG(-HexNAc2,442)", formula(16, 28, 2, 11)},
					{"HG(-HexNAc2Hex,586)", formula(22, 38, 2, 16)},
					{"HG(-HexNAc2Hex,604)", formula(22, 40, 2, 17)},
					{"HG(-HexNAc2Hex2,748)", formula(28, 48, 2, 21)},
					{"HG(-HexNAc2Hex2,766)", formula(28, 50, 2, 22)},
					{"HG(-HexNAc2Hex2,784)", formula(28, 52, 2, 23)},
				},
				posIons: concat(hexOxoniumPair(), []FragmentRule{
					posIon("HG(Hex2,324)", formula(12, 20, 0, 10)),
					posIon("HG(Hex2,342)", formula(12, 22, 0, 11)),
				}, hexNAcOxoniumSeries()),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "Gb3",
			Headgroup:          formula(18, 30, 0, 15),
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "1000-1100",
			Description:        "Galα1-4Galβ1-4Glc-Cer (Globotriaosylceramide)",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-Hex3,504)", formula(18, 32, 0, 16)},
					{"HG(-Hex3,522)", formula(18, 34, 0, 17)},
					{"HG(-Hex3,540)", formula(18, 36, 0, 18)},
					{"HG(-Hex2,342)", formula(12, 22, 0, 11)},
					{"HG(-Hex,180)", formula(6, 12, 0, 6)},
				},
				posIons: concat(hexOxoniumPair(), []FragmentRule{
					posIon("HG(Hex2,324)", formula(12, 20, 0, 10)),
					posIon("HG(Hex3,487)", formula(18, 30, 0, 15)),
				}),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "Gb4",
			Headgroup:          formula(26, 43, 1, 20),
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "1200-1400",
			Description:        "GalNAcβ1-3Galα1-4Galβ1-4Glc-Cer (isobaric to GA1)",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
					{"HG(-HexNAcHex,383)", formula(14, 25, 1, 11)},
					{"HG(-HexNAcHex2,545)", formula(20, 35, 1, 16)},
					{"HG(-HexNAcHex3,707)", formula(26, 45, 1, 21)},
					{"HG(-HexNAcHex3,725)", formula(26, 47, 1, 22)},
				},
				posIons: concat(hexOxoniumPair(), []FragmentRule{
					posIon("HG(Hex2,324)", formula(12, 20, 0, 10)),
					posIon("HG(Hex3,487)", formula(18, 30, 0, 15)),
				}, hexNAcOxoniumSeries(), []FragmentRule{
					posIon("HG(HexNAcHex,365)", formula(14, 23, 1, 10)),
				}),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GA2",
			Headgroup:          formula(20, 33, 1, 15),
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "1000-1100",
			Description:        "GalNAcβ1-4Galβ1-4Glc-Cer (asialo-GM2), isobaric to Lc3",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
					{"HG(-HexNAcHex,383)", formula(14, 25, 1, 11)},
					{"HG(-HexNAcHex2,545)", formula(20, 35, 1, 16)},
					{"HG(-HexNAcHex2,563)", formula(20, 37, 1, 17)},
				},
				posIons: concat([]FragmentRule{
					posIon("HG(Hex,180)", formula(6, 12, 0, 6)),
				}, hexNAcOxoniumSeries(), []FragmentRule{
					posIon("HG(HexHexNAc,383)", formula(14, 25, 1, 11)),
				}),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GA1",
			Headgroup:          formula(26, 43, 1, 20),
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "1200-1400",
			Description:        "Galβ1-3GalNAcβ1-4Galβ1-4Glc-Cer (asialo-GM1)",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
					{"HG(-HexNAcHex,383)", formula(14, 25, 1, 11)},
					{"HG(-HexNAc2Hex,586)", formula(22, 38, 2, 16)},
					{"HG(-HexNAc2Hex,604)", formula(22, 40, 2, 17)},
					{"HG(-HexNAc2Hex2,748)", formula(28, 48, 2, 21)},
					{"HG(-HexNAc2Hex2,766)", formula(28, 50, 2, 22)},
					{"HG(-HexNAc2Hex3,910)", formula(34, 58, 2, 26)},
					{"HG(-HexNAc2Hex3,928)", formula(34, 60, 2, 27)},
				},
				posIons: concat([]FragmentRule{
					posIon("HG(Hex,180)", formula(6, 12, 0, 6)),
				}, hexNAcOxoniumSeries(), []FragmentRule{
					posIon("HG(HexHexNAc,383)", formula(14, 25, 1, 11)),
				}),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "SM4",
			Headgroup:          sulfo(6, 10, 0, 8, 1),
			Sulfates:           1,
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "700-1100",
			Description:        "3-O-sulfated Gal-Cer (Sulfatide)",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-SO4H2,98)", sulfo(0, 2, 0, 4, 1)},
					{"HG(-SHex,260)", sulfo(6, 12, 0, 9, 1)},
					{"HG(-SHex,278)", sulfo(6, 14, 0, 10, 1)},
					{"HG(-SHex,242)", sulfo(6, 10, 0, 8, 1)},
				},
				posIons: []FragmentRule{
					posIon("HG(Hex,180)", formula(6, 12, 0, 6)),
				},
				negIons: []FragmentRule{
					negIon("HG(HSO4,97)", sulfo(0, 2, 0, 4, 1)),
					negIon("HG(SHexCer,242)", sulfo(6, 10, 0, 8, 1)),
					negIon("HG(SHexCer)+(C2H5NO)", sulfo(8, 15, 1, 9, 1)),
				},
				negLoss: []lossEntry{
					{"HG(-SO4H2,98)", sulfo(0, 2, 0, 4, 1)},
					{"HG(-SHex,260)", sulfo(6, 12, 0, 9, 1)},
					{"HG(-SHex,278)", sulfo(6, 14, 0, 10, 1)},
					{"HG(-SHex,242)", sulfo(6, 10, 0, 8, 1)},
				},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "SHex2",
			Headgroup:          sulfo(12, 20, 0, 13, 1),
			Sulfates:           1,
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1},
			MWRange:            "700-1100",
			Description:        "Sulfated dihexosylceramide",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  shex2Losses(),
				posIons: []FragmentRule{
					posIon("HG(Hex,180)", formula(6, 12, 0, 6)),
					posIon("HG(Hex2,342)", formula(12, 22, 0, 11)),
				},
				negIons: []FragmentRule{
					negIon("HG(HSO4,97)", sulfo(0, 2, 0, 4, 1)),
					negIon("HG(SO3,80)", sulfo(0, 1, 0, 3, 1)),
					negIon("HG(SHex,260)", sulfo(6, 12, 0, 9, 1)),
					negIon("HG(SHex,242)", sulfo(6, 10, 0, 8, 1)),
					negIon("HG(SHexHex,404)", sulfo(12, 20, 0, 13, 1)),
					negIon("HG(SHexHex,386)", sulfo(12, 18, 0, 12, 1)),
					negIon("HG(Hex,180)", formula(6, 12, 0, 6)),
					negIon("HG(Hex2,342)", formula(12, 22, 0, 11)),
				},
				negLoss:     shex2Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GM4",
			Headgroup:          formula(17, 27, 1, 13),
			SialicAcids:        1,
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1, 2},
			MWRange:            "1000-1200",
			Description:        "Neu5Acα2-3Galβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gm4Losses(),
				posIons: concat(neuAcOxoniumPair(), []FragmentRule{
					posIon("HG(NeuAcGal,471)", formula(17, 29, 1, 14)),
					posIon("HG(NeuAcGal,453)", formula(17, 27, 1, 13)),
				}),
				negIons:     neuAcAnion(),
				negLoss:     gm4Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GM3",
			Headgroup:          formula(23, 37, 1, 18),
			SialicAcids:        1,
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1, 2},
			MWRange:            "1200-1300",
			Description:        "NeuAcα2-3Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gm3Losses(),
				posIons: concat(neuAcOxoniumPair(), []FragmentRule{
					posIon("HG(Hex2,342)", formula(12, 22, 0, 11)),
				}),
				negIons:     neuAcAnion(),
				negLoss:     gm3Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GM2",
			Headgroup:          formula(31, 50, 2, 23),
			SialicAcids:        1,
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1, 2},
			MWRange:            "1400-1500",
			Description:        "GalNAcβ1-4(NeuAcα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone:    lcbPositiveRules,
				posLoss:     gm2Losses(),
				posIons:     concat(neuAcOxoniumPair(), gmOxoniumLadder()),
				negIons:     neuAcAnion(),
				negLoss:     gm2Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GM1",
			Headgroup:          formula(37, 60, 2, 28),
			SialicAcids:        1,
			MinCharge:          1,
			MaxCharge:          2,
			RecommendedCharges: []int{1, 2},
			MWRange:            "1500-1600",
			Description:        "Galβ1-3GalNAcβ1-4(NeuAcα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
					{"HG(-Neu5AcHexNAcHex,674)", formula(25, 42, 2, 19)},
					{"HG(-Neu5AcHexNAcHex2,836)", formula(31, 52, 2, 24)},
					{"HG(-Neu5AcHexNAcHex3,998)", formula(37, 62, 2, 29)},
					{"HG(-Neu5AcHexNAcHex3,1016)", formula(37, 64, 2, 30)},
				},
				posIons: concat(neuAcOxoniumPair(), gmOxoniumLadder()),
				negIons: neuAcAnion(),
				negLoss: []lossEntry{
					{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
					{"HG(-Neu5AcHexNAcHex,674)", formula(25, 42, 2, 19)},
					{"HG(-Neu5AcHexNAcHex2,836)", formula(31, 52, 2, 24)},
					{"HG(-Neu5AcHexNAcHex3,998)", formula(37, 62, 2, 29)},
					{"HG(-Neu5AcHexNAcHex3,1016)", formula(37, 64, 2, 30)},
				},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GD3",
			Headgroup:          formula(34, 54, 2, 26),
			SialicAcids:        2,
			MinCharge:          1,
			MaxCharge:          3,
			RecommendedCharges: []int{1, 2},
			MWRange:            "1500-1600",
			Description:        "NeuAcα2-8NeuAcα2-3Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone:    lcbPositiveRules,
				posLoss:     gd3Losses(),
				posIons:     concat(neuAcOxoniumPair(), neuAc2OxoniumPair()),
				negIons:     concat(neuAcAnion(), neuAc2AnionPair()),
				negLoss:     gd3Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GD2",
			Headgroup:          formula(42, 67, 3, 31),
			SialicAcids:        2,
			MinCharge:          1,
			MaxCharge:          3,
			RecommendedCharges: []int{2, 3},
			MWRange:            "1700-1800",
			Description:        "GalNAcβ1-4(NeuAcα2-8NeuAcα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gd2Losses(),
				posIons: concat(neuAcOxoniumPair(), neuAc2OxoniumPair(), hexNAcOxoniumSeries(), []FragmentRule{
					posIon("HG(HexNAcHex,383)", formula(14, 25, 1, 11)),
					posIon("HG(HexNAcHex,365)", formula(14, 23, 1, 10)),
					posIon("HG(NeuAc2Hex,744)", formula(28, 44, 2, 21)),
					posIon("HG(Neu5Ac2HexNAcHex,947)", formula(36, 57, 3, 26)),
					posIon("HG(Neu5Ac2HexNAcHex2,1109)", formula(42, 67, 3, 31)),
				}),
				negIons:     concat(neuAcAnion(), neuAc2AnionPair()),
				negLoss:     gd2Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GD1a",
			Headgroup:          formula(48, 77, 3, 36),
			SialicAcids:        2,
			MinCharge:          1,
			MaxCharge:          3,
			RecommendedCharges: []int{2, 3},
			MWRange:            "1800-1900",
			Description:        "NeuAcα2-3Galβ1-3GalNAcβ1-4(NeuAcα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gd1Losses(),
				posIons:  concat(neuAcOxoniumPair(), neuAc2OxoniumPair()),
				negIons: concat(neuAcAnion(), []FragmentRule{
					negIon("HG(HexNAcHex,365)", formula(14, 23, 1, 10)),
					negIon("HG(NeuAcHexNAcHex,656)", formula(25, 40, 2, 18)),
				}),
				negLoss:     gd1Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GD1b",
			Headgroup:          formula(48, 77, 3, 36),
			SialicAcids:        2,
			MinCharge:          1,
			MaxCharge:          3,
			RecommendedCharges: []int{2, 3},
			MWRange:            "1800-1900",
			Description:        "Galβ1-3GalNAcβ1-4(NeuAcα2-8NeuAcα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gd1Losses(),
				posIons:  concat(neuAcOxoniumPair(), neuAc2OxoniumPair()),
				negIons: concat(neuAcAnion(), neuAc2AnionPair(), []FragmentRule{
					negIon("HG(HexNAcHex,365)", formula(14, 23, 1, 10)),
				}),
				negLoss:     gd1Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GT3",
			Headgroup:          formula(45, 71, 3, 34),
			SialicAcids:        3,
			MinCharge:          1,
			MaxCharge:          4,
			RecommendedCharges: []int{2, 3},
			MWRange:            "1700-1900",
			Description:        "Neu5Acα2-8Neu5Acα2-8Neu5Acα2-3Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
					{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
					{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
					{"HG(-Neu5Ac3,909)", formula(33, 55, 3, 26)},
					{"HG(-Neu5Ac3Hex,1053)", formula(39, 63, 3, 30)},
					{"HG(-Neu5Ac3Hex,1215)", formula(45, 73, 3, 35)},
				},
				posIons: concat(gtOxoniumCommon(), []FragmentRule{
					posIon("HG(Hex,180)", formula(6, 12, 0, 6)),
				}),
				negIons: concat(neuAcAnion(), neuAc2AnionPair(), neuAc3AnionPair()),
				negLoss: []lossEntry{
					{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
					{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
					{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
					{"HG(-Neu5Ac3,909)", formula(33, 55, 3, 26)},
					{"HG(-Neu5Ac3Hex,1053)", formula(39, 63, 3, 30)},
					{"HG(-Neu5Ac3Hex,1215)", formula(45, 73, 3, 35)},
				},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GT2",
			Headgroup:          formula(53, 84, 4, 39),
			SialicAcids:        3,
			MinCharge:          1,
			MaxCharge:          4,
			RecommendedCharges: []int{2, 3},
			MWRange:            "1900-2100",
			Description:        "GalNAcβ1-4(Neu5Acα2-8Neu5Acα2-8Neu5Acα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
					{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
					{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
					{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
					{"HG(-HexNAcNeu5Ac3,1094)", formula(41, 66, 4, 30)},
					{"HG(-Neu5Ac3HexNAc,1112)", formula(41, 68, 4, 31)},
				},
				posIons: concat(gtOxoniumCommon(), hexNAcOxoniumSeries()),
				negIons: concat(neuAcAnion(), neuAc2AnionPair(), neuAc3AnionPair(), []FragmentRule{
					negIon("HG(HexNAc,203)", formula(8, 13, 1, 5)),
				}),
				negLoss: []lossEntry{
					{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
					{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
					{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
					{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
					{"HG(-HexNAcNeu5Ac3,1094)", formula(41, 66, 4, 30)},
					{"HG(-Neu5Ac3HexNAc,1112)", formula(41, 68, 4, 31)},
				},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GT1a",
			Headgroup:          formula(59, 94, 4, 44),
			SialicAcids:        3,
			MinCharge:          1,
			MaxCharge:          4,
			RecommendedCharges: []int{2, 3},
			MWRange:            "2000-2400",
			Description:        "Neu5Acα2-8Neu5Acα2-3Galβ1-3GalNAcβ1-4(Neu5Acα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone:    lcbPositiveRules,
				posLoss:     gt1aLosses(),
				posIons:     gtOxoniumCommon(),
				negIons:     concat(neuAcAnion(), neuAc2AnionPair()),
				negLoss:     gt1aLosses(),
				twoMinus:    []string{"HG(-Neu5Ac,309)"},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GT1b",
			Headgroup:          formula(59, 94, 4, 44),
			SialicAcids:        3,
			MinCharge:          1,
			MaxCharge:          4,
			RecommendedCharges: []int{2, 3},
			MWRange:            "2000-2400",
			Description:        "Neu5Acα2-3Galβ1-3GalNAcβ1-4(Neu5Acα2-8Neu5Acα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gt1bLosses(),
				posIons:  gtOxoniumCommon(),
				negIons: concat(neuAcAnion(), neuAc2AnionPair(), []FragmentRule{
					negIon("HG(NeuAcHexHexNAc,656)", formula(25, 40, 2, 18)),
				}),
				negLoss:     gt1bLosses(),
				twoMinus:    []string{"HG(-Neu5Ac,309)"},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GT1c",
			Headgroup:          formula(59, 94, 4, 44),
			SialicAcids:        3,
			MinCharge:          1,
			MaxCharge:          4,
			RecommendedCharges: []int{1, 2},
			MWRange:            "2000-2400",
			Description:        "Galβ1-3GalNAcβ1-4(NeuAcα2-8NeuAcα2-8NeuAcα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gt1cLosses(),
				posIons:  gtOxoniumCommon(),
				negIons: concat(neuAcAnion(), neuAc2AnionPair(), []FragmentRule{
					negIon("HG(HexHexNAc,365)", formula(14, 23, 1, 10)),
				}, neuAc3AnionPair()),
				negLoss:     gt1cLosses(),
				twoMinus:    []string{"HG(-Neu5Ac,309)"},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GQ1",
			Headgroup:          formula(70, 111, 5, 52),
			SialicAcids:        4,
			MinCharge:          1,
			MaxCharge:          5,
			RecommendedCharges: []int{3, 4},
			MWRange:            "2300-2400",
			Description:        "Neu5Acα2-8Neu5Acα2-8Neu5Acα2-3Galβ1-3GalNAcβ1-4(Neu5Acα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gq1Losses(),
				posIons:  gtOxoniumCommon(),
				negIons: concat(neuAcAnion(), neuAc2AnionPair(), []FragmentRule{
					negIon("HG(NeuAc2Hex,762)", formula(28, 46, 2, 22)),
				}, neuAc3AnionPair()),
				negLoss:     gq1Losses(),
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "GP1",
			Headgroup:          formula(81, 128, 6, 60),
			SialicAcids:        5,
			MinCharge:          1,
			MaxCharge:          5,
			RecommendedCharges: []int{3, 4, 5},
			MWRange:            "2600-2700",
			Description:        "Neu5Acα2-8Neu5Acα2-8Neu5Acα2-8Neu5Acα2-3Galβ1-3GalNAcβ1-4(Neu5Acα2-3)Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  gp1Losses(),
				posIons: concat(gtOxoniumCommon(), []FragmentRule{
					posIon("HG(NeuAc4HexNAcHex,1529)", formula(58, 91, 5, 42)),
				}),
				negIons: concat(neuAcAnion(), neuAc2AnionPair(), neuAc3AnionPair(), []FragmentRule{
					negIon("HG(NeuAc4,1164)", formula(44, 68, 4, 32)),
					negIon("HG(NeuAc4-CO2,1120)", formula(43, 68, 4, 30)),
				}),
				negLoss:     gp1Losses(),
				twoMinus:    []string{"HG(-Neu5Ac,309)", "HG(-Neu5Ac2,600)"},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "nLc6",
			Headgroup:          formula(40, 66, 2, 30),
			MinCharge:          1,
			MaxCharge:          2,
			MaxNegativeCharge:  2,
			RecommendedCharges: []int{1, 2},
			MWRange:            "1500-1800",
			Description:        "Galβ1-4GlcNAcβ1-3Galβ1-4GlcNAcβ1-3Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss: []lossEntry{
					{"HG(-Hex,180)", formula(6, 12, 0, 6)},
					{"HG(-HexHexNAc,365)", formula(14, 23, 1, 10)},
					{"HG(-HexHexNAc,383)", formula(14, 25, 1, 11)},
					{"HG(-Hex2HexNAc2,748)", formula(28, 48, 2, 21)},
					{"HG(-Hex2HexNAc2,766)", formula(28, 50, 2, 22)},
					{"HG(-Hex3HexNAc2,910)", formula(34, 58, 2, 26)},
					{"HG(-Hex3HexNAc2,928)", formula(34, 60, 2, 27)},
				},
				posIons: nLcOxoniumSeries(),
				negIons: nLcAnionSeries(),
				negLoss: []lossEntry{
					{"HG(-Hex,180)", formula(6, 12, 0, 6)},
					{"HG(-HexHexNAc,365)", formula(14, 23, 1, 10)},
					{"HG(-HexHexNAc,383)", formula(14, 25, 1, 11)},
					{"HG(-Hex2HexNAc2,748)", formula(28, 48, 2, 21)},
					{"HG(-Hex2HexNAc2,766)", formula(28, 50, 2, 22)},
					{"HG(-Hex3HexNAc2,910)", formula(34, 58, 2, 26)},
					{"HG(-Hex3HexNAc2,928)", formula(34, 60, 2, 27)},
				},
				negBackbone: true,
			}.build(),
		},
		{
			Name:               "nLc8",
			Headgroup:          formula(54, 89, 3, 40),
			MinCharge:          1,
			MaxCharge:          2,
			MaxNegativeCharge:  2,
			RecommendedCharges: []int{1, 2},
			MWRange:            "1900-2200",
			Description:        "Galβ1-4GlcNAcβ1-3(Galβ1-4GlcNAcβ1-6)Galβ1-4GlcNAcβ1-3Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  nlc8Losses(),
				posIons:  nLcOxoniumSeries(),
				negIons:  nLcAnionSeries(),
				negLoss:  nlc8Losses(),
				twoMinus: []string{"HG(-Hex,180)"},

				negBackbone: true,
			}.build(),
		},
		{
			Name:               "nLc10",
			Headgroup:          formula(68, 112, 4, 50),
			MinCharge:          1,
			MaxCharge:          3,
			MaxNegativeCharge:  3,
			RecommendedCharges: []int{1, 2},
			MWRange:            "2200-2500",
			Description:        "GlcNAcβ1-3Galβ1-4GlcNAcβ1-3(Galα1-3Galβ1-4GlcNAcβ1-6)Galβ1-4GlcNAcβ1-3Galβ1-4Glcβ-Cer",
			Rules: ruleSet{
				backbone: lcbPositiveRules,
				posLoss:  nlc10Losses(),
				posIons:  nLcOxoniumSeries(),
				negIons:  nLcAnionSeries(),
				negLoss:  nlc10Losses(),
				twoMinus: []string{"HG(-HexNAc,221)", "HG(-HexNAcHex,383)", "HG(-HexNAc2Hex,586)"},

				negBackbone: true,
			}.build(),
		},
	}
}

// Loss tables shared between polarities.

func shex2Losses() []lossEntry {
	return []lossEntry{
		{"HG(-SO3,80)", sulfo(0, 0, 0, 3, 1)},
		{"HG(-HSO3,81)", sulfo(0, 1, 0, 3, 1)},
		{"HG(-H2SO4,98)", sulfo(0, 2, 0, 4, 1)},
		{"HG(-SHex,242)", sulfo(6, 10, 0, 8, 1)},
		{"HG(-SHex,260)", sulfo(6, 12, 0, 9, 1)},
		{"HG(-SHex,278)", sulfo(6, 14, 0, 10, 1)},
		{"HG(-SHexHex,404)", sulfo(12, 20, 0, 13, 1)},
		{"HG(-SHexHex,422)", sulfo(12, 22, 0, 14, 1)},
		{"HG(-SHexHex,440)", sulfo(12, 24, 0, 15, 1)},
	}
}

func gm4Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-HexNeu5Ac,471)", formula(17, 29, 1, 14)},
	}
}

func gm3Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-HexNeu5Ac,471)", formula(17, 29, 1, 14)},
		{"HG(-Hex2Neu5Ac,633)", formula(23, 39, 1, 19)},
	}
}

func gm2Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5AcHexNAc,512)", formula(19, 32, 2, 14)},
		{"HG(-Neu5AcHexNAcHex,674)", formula(25, 42, 2, 19)},
		{"HG(-Neu5AcHexNAcHex2,836)", formula(31, 52, 2, 24)},
	}
}

func gd3Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
		{"HG(-HexNeu5Ac2,780)", formula(28, 46, 2, 22)},
		{"HG(-Hex2Neu5Ac2,942)", formula(34, 56, 2, 27)},
	}
}

func gd2Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
		{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
		{"HG(-HexNAc,203)", formula(8, 13, 1, 5)},
		{"HG(-Neu5AcHexNAc,512)", formula(19, 32, 2, 14)},
		{"HG(-Neu5Ac2HexNAc,803)", formula(30, 49, 3, 22)},
		{"HG(-Neu5Ac2HexNAcHex,965)", formula(36, 59, 3, 27)},
		{"HG(-HexNAcHex2Neu5Ac2,1127)", formula(42, 69, 3, 32)},
	}
}

func gd1Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5Ac2,618)", formula(22, 38, 2, 18)},
		{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
		{"HG(-Neu5Ac2Hex,762)", formula(28, 46, 2, 22)},
		{"HG(-Neu5Ac2HexNAcHex,965)", formula(36, 59, 3, 27)},
		{"HG(-Neu5Ac2HexNAcHex2,1127)", formula(42, 69, 3, 32)},
		{"HG(-Neu5Ac2HexNAcHex3,1289)", formula(48, 79, 3, 37)},
	}
}

func gt1aLosses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
		{"HG(-Neu5Ac2,618)", formula(22, 38, 2, 18)},
		{"HG(-Neu5Ac3,909)", formula(33, 55, 3, 26)},
		{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
		{"HG(-Neu5Ac2HexNAcHex,965)", formula(36, 59, 3, 27)},
		{"HG(-Neu5Ac3HexNAcHex,1274)", formula(47, 78, 4, 36)},
		{"HG(-Neu5Ac3HexNAcHex,1256)", formula(47, 76, 4, 35)},
	}
}

func gt1bLosses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
		{"HG(-Neu5Ac2,618)", formula(22, 38, 2, 18)},
		{"HG(-Neu5Ac3,909)", formula(33, 55, 3, 26)},
		{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
		{"HG(-Neu5AcHexNAcHex,674)", formula(25, 42, 2, 19)},
		{"HG(-Neu5Ac3HexNAcHex,1274)", formula(47, 78, 4, 36)},
		{"HG(-Neu5Ac3HexNAcHex,1256)", formula(47, 76, 4, 35)},
	}
}

func gt1cLosses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
		{"HG(-Hex,180)", formula(6, 12, 0, 6)},
		{"HG(-HexHexNAc,383)", formula(14, 25, 1, 11)},
		{"HG(-HexNeu5Ac3,1071)", formula(39, 65, 3, 31)},
		{"HG(-Neu5Ac3HexNAcHex,1274)", formula(47, 78, 4, 36)},
	}
}

func gq1Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
		{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
		{"HG(-Neu5Ac4,1182)", formula(44, 70, 4, 33)},
		{"HG(-Neu5Ac4HexNAcHex,1547)", formula(58, 93, 5, 43)},
		{"HG(-Neu5Ac4HexNAcHex,1727)", formula(64, 105, 5, 49)},
		{"HG(-Neu5Ac4HexNAcHex,1709)", formula(64, 103, 5, 48)},
		{"HG(-Neu5Ac4HexNAcHex,1871)", formula(70, 113, 5, 53)},
		{"HG(-Neu5Ac4HexNAcHex,1887)", formula(70, 113, 5, 54)},
	}
}

func gp1Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Neu5Ac,309)", formula(11, 19, 1, 9)},
		{"HG(-Neu5Ac2,600)", formula(22, 36, 2, 17)},
		{"HG(-Neu5Ac3,891)", formula(33, 53, 3, 25)},
		{"HG(-Neu5Ac4,1182)", formula(44, 70, 4, 33)},
		{"HG(-Neu5Ac4,1200)", formula(44, 72, 4, 34)},
		{"HG(-Neu5Ac5,1473)", formula(55, 87, 5, 41)},
		{"HG(-Neu5Ac5,1491)", formula(55, 89, 5, 42)},
		{"HG(-Neu5Ac4HexNAcHex,1547)", formula(58, 93, 5, 43)},
		{"HG(-Neu5Ac5HexNAcHex,1838)", formula(69, 110, 6, 51)},
	}
}

func nlc8Losses() []lossEntry {
	return []lossEntry{
		{"HG(-Hex,180)", formula(6, 12, 0, 6)},
		{"HG(-HexHexNAc,365)", formula(14, 23, 1, 10)},
		{"HG(-HexHexNAc,383)", formula(14, 25, 1, 11)},
		{"HG(-Hex3HexNAc3,1113)", formula(42, 71, 3, 31)},
		{"HG(-Hex3HexNAc3,1257)", formula(42, 71, 3, 32)},
	}
}

func nlc10Losses() []lossEntry {
	return []lossEntry{
		{"HG(-HexNAc,221)", formula(8, 15, 1, 6)},
		{"HG(-HexNAcHex,383)", formula(14, 25, 1, 11)},
		{"HG(-HexNAc2Hex,586)", formula(22, 38, 2, 16)},
		{"HG(-HexNAc4Hex4,1478)", formula(56, 94, 4, 44)},
	}
}

// gmOxoniumLadder is the GM2/GM1 positive-mode glycan ladder beyond the
// sialic acid pair.
func gmOxoniumLadder() []FragmentRule {
	return concat(hexNAcOxoniumSeries(), []FragmentRule{
		posIon("HG(HexNAcHex,383)", formula(14, 25, 1, 11)),
		posIon("HG(HexNAcHex,365)", formula(14, 23, 1, 10)),
		posIon("HG(HexNAcHex2,545)", formula(20, 35, 1, 16)),
		posIon("HG(HexNAcHex2,527)", formula(20, 33, 1, 15)),
	})
}

// gtOxoniumCommon is shared by the tri- and higher sialylated series.
func gtOxoniumCommon() []FragmentRule {
	return concat(neuAcOxoniumPair(), neuAc2OxoniumPair(), []FragmentRule{
		posIon("HG(HexNAcHex,365)", formula(14, 23, 1, 10)),
	})
}

func nLcOxoniumSeries() []FragmentRule {
	return concat([]FragmentRule{
		posIon("HG(Hex,180)", formula(6, 12, 0, 6)),
	}, hexNAcOxoniumSeries(), []FragmentRule{
		posIon("HG(HexNAcHex,383)", formula(14, 25, 1, 11)),
		posIon("HG(HexNAcHex,365)", formula(14, 23, 1, 10)),
	})
}
