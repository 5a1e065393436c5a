package registry

// Builtin returns the registry built from the embedded presidential and
// government fleet table.
func Builtin() *Registry {
	return New(builtinRecords)
}

// builtinRecords lists presidential, executive and government transport
// aircraft. Priority countries come first, then Europe.
var builtinRecords = []Record{
	// USA: Presidential & Executive Fleet
	{ICAO: "ae001f", Country: "USA", Description: "Air Force One (VC-25A)", Registration: "82-8000", TypeCode: "VC25"},
	{ICAO: "ae0020", Country: "USA", Description: "Air Force One (VC-25A)", Registration: "92-9000", TypeCode: "VC25"},
	{ICAO: "ae001c", Country: "USA", Description: "Air Force Two (C-32A)", Registration: "98-0001", TypeCode: "C32"},
	{ICAO: "ae001d", Country: "USA", Description: "Air Force Two (C-32A)", Registration: "98-0002", TypeCode: "C32"},
	{ICAO: "ae4a48", Country: "USA", Description: "C-32A VIP Transport", Registration: "99-6143", TypeCode: "C32"},
	{ICAO: "ae01fa", Country: "USA", Description: "C-40B Executive Transport", Registration: "01-0040", TypeCode: "C40"},
	{ICAO: "ae01fb", Country: "USA", Description: "C-40B Executive Transport", Registration: "01-0041", TypeCode: "C40"},
	{ICAO: "ae010c", Country: "USA", Description: "C-37A Gulfstream VIP", Registration: "97-0400", TypeCode: "C37A"},
	{ICAO: "ae010d", Country: "USA", Description: "C-37A Gulfstream VIP", Registration: "97-0401", TypeCode: "C37A"},
	{ICAO: "ae0100", Country: "USA", Description: "C-37B Gulfstream VIP", Registration: "09-0525", TypeCode: "C37B"},
	{ICAO: "ae0101", Country: "USA", Description: "C-37B Gulfstream VIP", Registration: "09-0540", TypeCode: "C37B"},
	// E-4B Nightwatch "Doomsday Planes": Airborne Command Post
	{ICAO: "ae0414", Country: "USA", Description: "E-4B Nightwatch NAOC", Registration: "73-1676", TypeCode: "E4B"},
	{ICAO: "ae0415", Country: "USA", Description: "E-4B Nightwatch NAOC", Registration: "74-0787", TypeCode: "E4B"},
	{ICAO: "ae0416", Country: "USA", Description: "E-4B Nightwatch NAOC", Registration: "75-0125", TypeCode: "E4B"},
	{ICAO: "ae0417", Country: "USA", Description: "E-4B Nightwatch NAOC", Registration: "75-0126", TypeCode: "E4B"},
	// E-6B Mercury: Nuclear Command
	{ICAO: "ae0419", Country: "USA", Description: "E-6B Mercury TACAMO", Registration: "162782", TypeCode: "E6"},
	{ICAO: "ae041a", Country: "USA", Description: "E-6B Mercury TACAMO", Registration: "162783", TypeCode: "E6"},
	{ICAO: "ae041b", Country: "USA", Description: "E-6B Mercury TACAMO", Registration: "163918", TypeCode: "E6"},
	// RUSSIA: Presidential Fleet
	{ICAO: "155026", Country: "Russia", Description: "IL-96-300PU Presidential", Registration: "RA-96016", TypeCode: "IL96"},
	{ICAO: "155027", Country: "Russia", Description: "IL-96-300PU Presidential", Registration: "RA-96017", TypeCode: "IL96"},
	{ICAO: "155028", Country: "Russia", Description: "IL-96-300PU Presidential", Registration: "RA-96018", TypeCode: "IL96"},
	{ICAO: "155029", Country: "Russia", Description: "IL-96-300PU Presidential", Registration: "RA-96019", TypeCode: "IL96"},
	{ICAO: "15502a", Country: "Russia", Description: "IL-96-300PU Presidential", Registration: "RA-96020", TypeCode: "IL96"},
	{ICAO: "15502b", Country: "Russia", Description: "IL-96-300PU Presidential", Registration: "RA-96021", TypeCode: "IL96"},
	{ICAO: "15502c", Country: "Russia", Description: "IL-96-300PU Presidential", Registration: "RA-96022", TypeCode: "IL96"},
	{ICAO: "150d4e", Country: "Russia", Description: "Tu-214PU Government", Registration: "RA-64517", TypeCode: "T214"},
	{ICAO: "150d4f", Country: "Russia", Description: "Tu-214PU Government", Registration: "RA-64520", TypeCode: "T214"},
	{ICAO: "150125", Country: "Russia", Description: "IL-96-400 Presidential", Registration: "RA-96102", TypeCode: "IL96"},
	{ICAO: "155001", Country: "Russia", Description: "Tu-214SR Government", Registration: "RA-64515", TypeCode: "T214"},
	{ICAO: "155002", Country: "Russia", Description: "Tu-214SR Government", Registration: "RA-64516", TypeCode: "T214"},
	// Russian Air Force Command
	{ICAO: "145624", Country: "Russia", Description: "Il-80 Doomsday Plane", Registration: "RA-86147", TypeCode: "IL86"},
	{ICAO: "145625", Country: "Russia", Description: "Il-80 Doomsday Plane", Registration: "RA-86148", TypeCode: "IL86"},
	// CHINA: Government & Military
	{ICAO: "780a71", Country: "China", Description: "B747-8i Presidential", Registration: "B-2479", TypeCode: "B748"},
	{ICAO: "780a72", Country: "China", Description: "B747-8i VIP", Registration: "B-2480", TypeCode: "B748"},
	{ICAO: "780b71", Country: "China", Description: "B737-800 Government", Registration: "B-4026", TypeCode: "B738"},
	{ICAO: "780b72", Country: "China", Description: "B737-800 Government", Registration: "B-4027", TypeCode: "B738"},
	{ICAO: "780c01", Country: "China", Description: "A319CJ Government", Registration: "B-4090", TypeCode: "A319"},
	{ICAO: "780c02", Country: "China", Description: "A319CJ Government", Registration: "B-4091", TypeCode: "A319"},
	{ICAO: "781011", Country: "China", Description: "PLAAF VIP Transport", Registration: "B-4025", TypeCode: "B738"},
	// NORTH KOREA: Government (rarely visible)
	{ICAO: "720101", Country: "North Korea", Description: "IL-62M Chammae-1", Registration: "P-618", TypeCode: "IL62"},
	{ICAO: "720102", Country: "North Korea", Description: "IL-62M Government", Registration: "P-885", TypeCode: "IL62"},
	{ICAO: "720201", Country: "North Korea", Description: "Tu-154 Government", Registration: "P-552", TypeCode: "T154"},
	{ICAO: "720301", Country: "North Korea", Description: "AN-148 Government", Registration: "P-671", TypeCode: "A148"},
	{ICAO: "720302", Country: "North Korea", Description: "AN-148 Government", Registration: "P-672", TypeCode: "A148"},
	// UKRAINE: Government Fleet
	{ICAO: "508a28", Country: "Ukraine", Description: "A319CJ Presidential", Registration: "UR-ABA", TypeCode: "A319"},
	{ICAO: "508016", Country: "Ukraine", Description: "IL-62M Government", Registration: "UR-86527", TypeCode: "IL62"},
	{ICAO: "508017", Country: "Ukraine", Description: "IL-62M Government", Registration: "UR-86528", TypeCode: "IL62"},
	{ICAO: "508a01", Country: "Ukraine", Description: "An-148 Government", Registration: "UR-UKR", TypeCode: "A148"},
	// CZECH REPUBLIC: Government Fleet
	{ICAO: "498da4", Country: "Czech Rep", Description: "A319CJ Government", Registration: "OK-GOV", TypeCode: "A319"},
	{ICAO: "498d4a", Country: "Czech Rep", Description: "CL-601 Challenger VIP", Registration: "OK-BYR", TypeCode: "CL60"},
	{ICAO: "498012", Country: "Czech Rep", Description: "A319 Air Force", Registration: "3085", TypeCode: "A319"},
	{ICAO: "498001", Country: "Czech Rep", Description: "CASA C-295M", Registration: "0452", TypeCode: "C295"},
	{ICAO: "498002", Country: "Czech Rep", Description: "CASA C-295M", Registration: "0453", TypeCode: "C295"},
	// UNITED KINGDOM: Royal/Government Fleet
	{ICAO: "43c6c4", Country: "UK", Description: "RAF Voyager A330 MRTT", Registration: "ZZ330", TypeCode: "A332"},
	{ICAO: "43c6c5", Country: "UK", Description: "RAF Voyager A330 MRTT", Registration: "ZZ331", TypeCode: "A332"},
	{ICAO: "43c6c6", Country: "UK", Description: "RAF Voyager A330 MRTT", Registration: "ZZ332", TypeCode: "A332"},
	{ICAO: "43c6c7", Country: "UK", Description: "RAF Voyager A330 MRTT", Registration: "ZZ333", TypeCode: "A332"},
	{ICAO: "43c6c8", Country: "UK", Description: "RAF Voyager A330 MRTT", Registration: "ZZ334", TypeCode: "A332"},
	{ICAO: "43c6c9", Country: "UK", Description: "RAF Voyager A330 MRTT", Registration: "ZZ335", TypeCode: "A332"},
	{ICAO: "43c6d0", Country: "UK", Description: "RAF Voyager A330 MRTT", Registration: "ZZ336", TypeCode: "A332"},
	{ICAO: "43c2f0", Country: "UK", Description: "BAe 146 Royal Flight", Registration: "ZE700", TypeCode: "B461"},
	{ICAO: "43c2f1", Country: "UK", Description: "BAe 146 Royal Flight", Registration: "ZE701", TypeCode: "B461"},
	// FRANCE: Government Fleet (Republique)
	{ICAO: "3b75a6", Country: "France", Description: "A330-200 Cotam 001", Registration: "F-RARF", TypeCode: "A332"},
	{ICAO: "3b75a5", Country: "France", Description: "A330-200 Cotam 002", Registration: "F-RARE", TypeCode: "A332"},
	{ICAO: "3b7541", Country: "France", Description: "Falcon 7X VIP", Registration: "F-RAFB", TypeCode: "FA7X"},
	{ICAO: "3b7542", Country: "France", Description: "Falcon 7X VIP", Registration: "F-RAFC", TypeCode: "FA7X"},
	{ICAO: "3b7543", Country: "France", Description: "Falcon 900 VIP", Registration: "F-RAFD", TypeCode: "F900"},
	{ICAO: "3b7544", Country: "France", Description: "Falcon 2000 VIP", Registration: "F-RAFE", TypeCode: "F2TH"},
	{ICAO: "3b7545", Country: "France", Description: "A340-200 VIP", Registration: "F-RAJB", TypeCode: "A342"},
	{ICAO: "3b7601", Country: "France", Description: "A330 MRTT Phenix", Registration: "F-UJCA", TypeCode: "A332"},
	{ICAO: "3b7602", Country: "France", Description: "A330 MRTT Phenix", Registration: "F-UJCB", TypeCode: "A332"},
	// GERMANY: Government Fleet (Flugbereitschaft)
	{ICAO: "3f4615", Country: "Germany", Description: "A350-900 Konrad Adenauer", Registration: "10+01", TypeCode: "A359"},
	{ICAO: "3f4616", Country: "Germany", Description: "A350-900 Theodor Heuss", Registration: "10+02", TypeCode: "A359"},
	{ICAO: "3f4617", Country: "Germany", Description: "A350-900 Kurt Schumacher", Registration: "10+03", TypeCode: "A359"},
	{ICAO: "3f4542", Country: "Germany", Description: "A321-200 VIP", Registration: "15+01", TypeCode: "A321"},
	{ICAO: "3f4543", Country: "Germany", Description: "A321-200 VIP", Registration: "15+02", TypeCode: "A321"},
	{ICAO: "3f4544", Country: "Germany", Description: "A319CJ VIP", Registration: "15+03", TypeCode: "A319"},
	{ICAO: "3f4545", Country: "Germany", Description: "A319CJ VIP", Registration: "15+04", TypeCode: "A319"},
	{ICAO: "3f457c", Country: "Germany", Description: "Global 5000 VIP", Registration: "14+01", TypeCode: "GL5T"},
	{ICAO: "3f457d", Country: "Germany", Description: "Global 5000 VIP", Registration: "14+02", TypeCode: "GL5T"},
	{ICAO: "3f457e", Country: "Germany", Description: "Global 5000 VIP", Registration: "14+03", TypeCode: "GL5T"},
	{ICAO: "3f457f", Country: "Germany", Description: "Global 5000 VIP", Registration: "14+04", TypeCode: "GL5T"},
	// ITALY: Government Fleet
	{ICAO: "33ff01", Country: "Italy", Description: "A340-500 Presidential", Registration: "I-TALY", TypeCode: "A345"},
	{ICAO: "33ff02", Country: "Italy", Description: "A319CJ VIP", Registration: "MM62243", TypeCode: "A319"},
	{ICAO: "33ff03", Country: "Italy", Description: "A319CJ VIP", Registration: "MM62174", TypeCode: "A319"},
	{ICAO: "33ff10", Country: "Italy", Description: "Falcon 900EX VIP", Registration: "MM62210", TypeCode: "F900"},
	{ICAO: "33ff11", Country: "Italy", Description: "Falcon 900EX VIP", Registration: "MM62211", TypeCode: "F900"},
	{ICAO: "33ff12", Country: "Italy", Description: "Falcon 900EX VIP", Registration: "MM62244", TypeCode: "F900"},
	// SPAIN: Government Fleet
	{ICAO: "34318c", Country: "Spain", Description: "A310-300 VIP", Registration: "T.22-1", TypeCode: "A310"},
	{ICAO: "34318d", Country: "Spain", Description: "A310-300 VIP", Registration: "T.22-2", TypeCode: "A310"},
	{ICAO: "343191", Country: "Spain", Description: "Falcon 900 VIP", Registration: "T.18-1", TypeCode: "F900"},
	{ICAO: "343192", Country: "Spain", Description: "Falcon 900 VIP", Registration: "T.18-2", TypeCode: "F900"},
	{ICAO: "343193", Country: "Spain", Description: "Falcon 900 VIP", Registration: "T.18-3", TypeCode: "F900"},
	{ICAO: "343194", Country: "Spain", Description: "Falcon 900 VIP", Registration: "T.18-4", TypeCode: "F900"},
	{ICAO: "343195", Country: "Spain", Description: "Falcon 900 VIP", Registration: "T.18-5", TypeCode: "F900"},
	{ICAO: "3431a0", Country: "Spain", Description: "A400M Atlas", Registration: "T.23-01", TypeCode: "A400"},
	// POLAND: Government Fleet
	{ICAO: "489702", Country: "Poland", Description: "B737-800 Head of State", Registration: "SP-LIG", TypeCode: "B738"},
	{ICAO: "489460", Country: "Poland", Description: "Gulfstream G550 VIP", Registration: "0110", TypeCode: "G550"},
	{ICAO: "489461", Country: "Poland", Description: "Gulfstream G550 VIP", Registration: "0111", TypeCode: "G550"},
	{ICAO: "48947e", Country: "Poland", Description: "B737-800BBJ VIP", Registration: "0001", TypeCode: "B738"},
	{ICAO: "48947f", Country: "Poland", Description: "B737-800BBJ VIP", Registration: "0002", TypeCode: "B738"},
	// NETHERLANDS: Government Fleet
	{ICAO: "484101", Country: "Netherlands", Description: "B737-700BBJ Royal", Registration: "PH-GOV", TypeCode: "B737"},
	{ICAO: "484102", Country: "Netherlands", Description: "Gulfstream G650 VIP", Registration: "PH-GVI", TypeCode: "G650"},
	{ICAO: "484110", Country: "Netherlands", Description: "KDC-10 Tanker/VIP", Registration: "T-264", TypeCode: "DC10"},
	// BELGIUM: Government Fleet
	{ICAO: "44d001", Country: "Belgium", Description: "ERJ-135 VIP", Registration: "CE-01", TypeCode: "E135"},
	{ICAO: "44d002", Country: "Belgium", Description: "ERJ-145 VIP", Registration: "CE-02", TypeCode: "E145"},
	{ICAO: "44d003", Country: "Belgium", Description: "Falcon 7X VIP", Registration: "CD-01", TypeCode: "FA7X"},
	{ICAO: "44d010", Country: "Belgium", Description: "A321 Government", Registration: "CS-TRJ", TypeCode: "A321"},
	// AUSTRIA: Government Fleet
	{ICAO: "440101", Country: "Austria", Description: "PC-12 VIP", Registration: "OE-EPM", TypeCode: "PC12"},
	{ICAO: "440102", Country: "Austria", Description: "C-130K Hercules", Registration: "8T-CA", TypeCode: "C130"},
	{ICAO: "440103", Country: "Austria", Description: "C-130K Hercules", Registration: "8T-CB", TypeCode: "C130"},
	{ICAO: "440104", Country: "Austria", Description: "C-130K Hercules", Registration: "8T-CC", TypeCode: "C130"},
	// SWITZERLAND: Government Fleet
	{ICAO: "4b0011", Country: "Switzerland", Description: "Citation Excel VIP", Registration: "T-784", TypeCode: "C56X"},
	{ICAO: "4b0012", Country: "Switzerland", Description: "PC-24 VIP", Registration: "T-786", TypeCode: "PC24"},
	{ICAO: "4b0013", Country: "Switzerland", Description: "Falcon 900 VIP", Registration: "T-785", TypeCode: "F900"},
	// SWEDEN: Government Fleet
	{ICAO: "4a8001", Country: "Sweden", Description: "Gulfstream G550 VIP", Registration: "102001", TypeCode: "G550"},
	{ICAO: "4a8002", Country: "Sweden", Description: "Gulfstream G550 VIP", Registration: "102002", TypeCode: "G550"},
	{ICAO: "4a8003", Country: "Sweden", Description: "S102B Korpen SIGINT", Registration: "102003", TypeCode: "G550"},
	// NORWAY: Government Fleet
	{ICAO: "478101", Country: "Norway", Description: "Falcon 7X VIP", Registration: "053", TypeCode: "FA7X"},
	{ICAO: "478102", Country: "Norway", Description: "Falcon 7X VIP", Registration: "054", TypeCode: "FA7X"},
	{ICAO: "478103", Country: "Norway", Description: "Falcon 20 EW", Registration: "041", TypeCode: "FA20"},
	// DENMARK: Government Fleet
	{ICAO: "459901", Country: "Denmark", Description: "CL-604 Challenger VIP", Registration: "C-080", TypeCode: "CL60"},
	{ICAO: "459902", Country: "Denmark", Description: "CL-604 Challenger VIP", Registration: "C-168", TypeCode: "CL60"},
	{ICAO: "459903", Country: "Denmark", Description: "CL-604 Challenger VIP", Registration: "C-172", TypeCode: "CL60"},
	// FINLAND: Government Fleet
	{ICAO: "461e01", Country: "Finland", Description: "CL-604 Challenger VIP", Registration: "CC-1", TypeCode: "CL60"},
	{ICAO: "461e02", Country: "Finland", Description: "LJ-35 Learjet VIP", Registration: "LJ-1", TypeCode: "LJ35"},
	{ICAO: "461e03", Country: "Finland", Description: "LJ-35 Learjet VIP", Registration: "LJ-2", TypeCode: "LJ35"},
	// PORTUGAL: Government Fleet
	{ICAO: "490501", Country: "Portugal", Description: "Falcon 50 VIP", Registration: "17401", TypeCode: "FA50"},
	{ICAO: "490502", Country: "Portugal", Description: "Falcon 50 VIP", Registration: "17402", TypeCode: "FA50"},
	{ICAO: "490503", Country: "Portugal", Description: "Falcon 50 VIP", Registration: "17403", TypeCode: "FA50"},
	// GREECE: Government Fleet
	{ICAO: "468c01", Country: "Greece", Description: "ERJ-135 VIP", Registration: "145-208", TypeCode: "E135"},
	{ICAO: "468c02", Country: "Greece", Description: "ERJ-135 VIP", Registration: "145-209", TypeCode: "E135"},
	{ICAO: "468c03", Country: "Greece", Description: "Gulfstream V VIP", Registration: "678", TypeCode: "GLF5"},
	// HUNGARY: Government Fleet
	{ICAO: "47a001", Country: "Hungary", Description: "Falcon 7X VIP", Registration: "606", TypeCode: "FA7X"},
	{ICAO: "47a002", Country: "Hungary", Description: "Dassault 900LX VIP", Registration: "604", TypeCode: "F900"},
	{ICAO: "47a003", Country: "Hungary", Description: "A319CJ VIP", Registration: "605", TypeCode: "A319"},
	// ROMANIA: Government Fleet
	{ICAO: "4a1001", Country: "Romania", Description: "B737-700BBJ VIP", Registration: "YR-BBJ", TypeCode: "B737"},
	{ICAO: "4a1002", Country: "Romania", Description: "C-130H Hercules", Registration: "5930", TypeCode: "C130"},
	// BULGARIA: Government Fleet
	{ICAO: "450501", Country: "Bulgaria", Description: "Falcon 2000 VIP", Registration: "LZ-OOI", TypeCode: "F2TH"},
	{ICAO: "450502", Country: "Bulgaria", Description: "A319 Government", Registration: "LZ-AOB", TypeCode: "A319"},
	// CROATIA: Government Fleet
	{ICAO: "501c01", Country: "Croatia", Description: "CL-604 Challenger VIP", Registration: "9A-CRO", TypeCode: "CL60"},
	// SLOVENIA: Government Fleet
	{ICAO: "4d0001", Country: "Slovenia", Description: "Falcon 2000 VIP", Registration: "S5-BAV", TypeCode: "F2TH"},
	// SLOVAKIA: Government Fleet
	{ICAO: "506c01", Country: "Slovakia", Description: "Fokker 100 VIP", Registration: "OM-BYA", TypeCode: "F100"},
	{ICAO: "506c02", Country: "Slovakia", Description: "Fokker 100 VIP", Registration: "OM-BYB", TypeCode: "F100"},
	// ESTONIA: Government Fleet
	{ICAO: "511017", Country: "Estonia", Description: "CRJ-700 Government", Registration: "ES-PVG", TypeCode: "CRJ7"},
	// LATVIA: Government Fleet
	{ICAO: "502c03", Country: "Latvia", Description: "A220-300 Government", Registration: "YL-LFB", TypeCode: "BCS3"},
	{ICAO: "502c17", Country: "Latvia", Description: "L-410 Government", Registration: "YL-KAM", TypeCode: "L410"},
	// LITHUANIA: Government Fleet
	{ICAO: "503c01", Country: "Lithuania", Description: "L-410 Government", Registration: "01", TypeCode: "L410"},
	{ICAO: "503c02", Country: "Lithuania", Description: "C-27J Spartan", Registration: "02", TypeCode: "C27J"},
	// IRELAND: Government Fleet
	{ICAO: "4c8001", Country: "Ireland", Description: "LJ-45 Learjet VIP", Registration: "252", TypeCode: "LJ45"},
	{ICAO: "4c8002", Country: "Ireland", Description: "LJ-45 Learjet VIP", Registration: "253", TypeCode: "LJ45"},
	{ICAO: "4c8003", Country: "Ireland", Description: "G280 Government", Registration: "280", TypeCode: "G280"},
	// TURKEY: Government Fleet
	{ICAO: "4b8001", Country: "Turkey", Description: "A330-200 VIP", Registration: "TC-TUR", TypeCode: "A332"},
	{ICAO: "4b8002", Country: "Turkey", Description: "A319CJ VIP", Registration: "TC-ANA", TypeCode: "A319"},
	{ICAO: "4b8003", Country: "Turkey", Description: "Gulfstream 550 VIP", Registration: "TC-DAP", TypeCode: "G550"},
	{ICAO: "4b8004", Country: "Turkey", Description: "B737-800BBJ VIP", Registration: "TC-ATA", TypeCode: "B738"},
	// BELARUS: Government Fleet
	{ICAO: "151db8", Country: "Belarus", Description: "B737-800 Presidential", Registration: "EW-001PA", TypeCode: "B738"},
	{ICAO: "151db9", Country: "Belarus", Description: "B767 VIP", Registration: "EW-001PB", TypeCode: "B767"},
	{ICAO: "151dc0", Country: "Belarus", Description: "Tu-134 Government", Registration: "EW-65149", TypeCode: "T134"},
	// SERBIA: Government Fleet
	{ICAO: "4d0101", Country: "Serbia", Description: "Falcon 900 VIP", Registration: "YU-FSS", TypeCode: "F900"},
	{ICAO: "4d0102", Country: "Serbia", Description: "ERJ-135 VIP", Registration: "YU-SRB", TypeCode: "E135"},
	// ALBANIA: Government Fleet
	{ICAO: "501901", Country: "Albania", Description: "AS365 Dauphin VIP", Registration: "ZA-BDF", TypeCode: "AS65"},
	// NORTH MACEDONIA: Government Fleet
	{ICAO: "4d0301", Country: "N. Macedonia", Description: "LJ-60 Learjet VIP", Registration: "Z3-MKD", TypeCode: "LJ60"},
	// MONTENEGRO: Government Fleet
	{ICAO: "4d0201", Country: "Montenegro", Description: "Falcon 50 VIP", Registration: "4O-MNE", TypeCode: "FA50"},
	// BOSNIA: Government Fleet
	{ICAO: "4d0401", Country: "Bosnia", Description: "HUEY II VIP", Registration: "T9-HAD", TypeCode: "HUEY"},
	// LUXEMBOURG: Government Fleet
	{ICAO: "4b0501", Country: "Luxembourg", Description: "LJ-45 Learjet VIP", Registration: "NAT-01", TypeCode: "LJ45"},
	// ICELAND: Government Fleet
	{ICAO: "4ccc01", Country: "Iceland", Description: "DHC-8 Coast Guard", Registration: "TF-SIF", TypeCode: "DH8D"},
	// CYPRUS: Government Fleet
	{ICAO: "4d8001", Country: "Cyprus", Description: "A319CJ Government", Registration: "5B-CYP", TypeCode: "A319"},
	// MALTA: Government Fleet
	{ICAO: "4d9001", Country: "Malta", Description: "B200 King Air VIP", Registration: "AS1428", TypeCode: "BE20"},
}
