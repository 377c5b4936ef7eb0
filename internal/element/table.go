package element

import (
	"sort"
	"strings"
)

// Record is a single element entry. Records are values; the table never hands
// out pointers into its storage.
type Record struct {
	Symbol       string `json:"symbol" yaml:"symbol"`
	Name         string `json:"name" yaml:"name"`
	AtomicNumber int    `json:"atomic_number" yaml:"atomic_number"`
	ColorHex     string `json:"color_hex" yaml:"color_hex"`
	Meaning      string `json:"meaning" yaml:"meaning"`
}

// table is built once at package load and never written afterwards, so it is
// safe for concurrent readers without locking.
var table = map[string]Record{
	"H":  {"H", "Hydrogen", 1, "FFFFFF", "The first spark; you start things others finish."},
	"He": {"He", "Helium", 2, "D9FFFF", "Light-hearted and hard to weigh down."},
	"Li": {"Li", "Lithium", 3, "CC80FF", "Keeps the mood steady when others swing."},
	"Be": {"Be", "Beryllium", 4, "C2FF00", "Rare strength hidden in a small frame."},
	"B":  {"B", "Boron", 5, "FFB5B5", "Quietly holds the structure together."},
	"C":  {"C", "Carbon", 6, "909090", "The builder of life; bonds with everyone."},
	"N":  {"N", "Nitrogen", 7, "3050F8", "Calm on the surface, essential underneath."},
	"O":  {"O", "Oxygen", 8, "FF0D0D", "People breathe easier when you are around."},
	"F":  {"F", "Fluorine", 9, "90E050", "Reactive, bold and impossible to ignore."},
	"Ne": {"Ne", "Neon", 10, "B3E3F5", "Glows brightest under pressure."},
	"Na": {"Na", "Sodium", 11, "AB5CF2", "Adds flavour to every room."},
	"Mg": {"Mg", "Magnesium", 12, "8AFF00", "Burns with a brilliant white light."},
	"Al": {"Al", "Aluminium", 13, "BFA6A6", "Light, flexible and endlessly reusable."},
	"Si": {"Si", "Silicon", 14, "F0C8A0", "The thinker; circuits of ideas run through you."},
	"P":  {"P", "Phosphorus", 15, "FF8000", "Carries energy wherever it goes."},
	"S":  {"S", "Sulfur", 16, "FFFF30", "Fiery temper with a golden core."},
	"Cl": {"Cl", "Chlorine", 17, "1FF01F", "Clears out what no longer serves."},
	"Ar": {"Ar", "Argon", 18, "80D1E3", "Unbothered, noble and serene."},
	"K":  {"K", "Potassium", 19, "8F40D4", "Keeps the heart's rhythm steady."},
	"Ca": {"Ca", "Calcium", 20, "3DFF00", "The backbone friends lean on."},
	"Sc": {"Sc", "Scandium", 21, "E6E6E6", "Small touches that make things stronger."},
	"Ti": {"Ti", "Titanium", 22, "BFC2C7", "Tough, light and built to last."},
	"V":  {"V", "Vanadium", 23, "A6A6AB", "Brings colour to everything it touches."},
	"Cr": {"Cr", "Chromium", 24, "8A99C7", "A polished finish on every plan."},
	"Mn": {"Mn", "Manganese", 25, "9C7AC7", "Strengthens those who stand beside you."},
	"Fe": {"Fe", "Iron", 26, "E06633", "Strong-willed and grounded; the core of the matter."},
	"Co": {"Co", "Cobalt", 27, "F090A0", "Deep blue loyalty."},
	"Ni": {"Ni", "Nickel", 28, "50D050", "Resists corrosion, keeps its shine."},
	"Cu": {"Cu", "Copper", 29, "C88033", "A natural connector; energy flows through you."},
	"Zn": {"Zn", "Zinc", 30, "7D80B0", "Protects others before itself."},
	"Ga": {"Ga", "Gallium", 31, "C28F8F", "Melts in your hand; warm and adaptable."},
	"Ge": {"Ge", "Germanium", 32, "668F8F", "Quietly powers the modern world."},
	"As": {"As", "Arsenic", 33, "BD80E3", "A sharp edge best handled with care."},
	"Se": {"Se", "Selenium", 34, "FFA100", "Turns light into current."},
	"Br": {"Br", "Bromine", 35, "A62929", "Intense, fluid and unforgettable."},
	"Kr": {"Kr", "Krypton", 36, "5CB8D1", "Mysterious strength from far away."},
	"Rb": {"Rb", "Rubidium", 37, "702EB0", "Keeps perfect time."},
	"Sr": {"Sr", "Strontium", 38, "00FF00", "Lights up the sky in crimson."},
	"Y":  {"Y", "Yttrium", 39, "94FFFF", "Asks the questions that lead to discovery."},
	"Zr": {"Zr", "Zirconium", 40, "94E0E0", "Sparkles like a diamond without the price."},
	"Nb": {"Nb", "Niobium", 41, "73C2C9", "Superconducting calm."},
	"Mo": {"Mo", "Molybdenum", 42, "54B5B5", "Holds firm when the heat rises."},
	"Tc": {"Tc", "Technetium", 43, "3B9E9E", "One of a kind; nature had to invent you twice."},
	"Ru": {"Ru", "Ruthenium", 44, "248F8F", "Hard to tarnish, easy to admire."},
	"Rh": {"Rh", "Rhodium", 45, "0A7D8C", "Rare brilliance that reflects on others."},
	"Pd": {"Pd", "Palladium", 46, "006985", "Absorbs a lot and gives back clean air."},
	"Ag": {"Ag", "Silver", 47, "C0C0C0", "Bright, conductive and quietly valuable."},
	"Cd": {"Cd", "Cadmium", 48, "FFD98F", "Vivid colour with a warning label."},
	"In": {"In", "Indium", 49, "A67573", "Soft enough to leave a mark on everything."},
	"Sn": {"Sn", "Tin", 50, "668080", "Binds metals and people together."},
	"Sb": {"Sb", "Antimony", 51, "9E63B5", "Ancient beauty with modern uses."},
	"Te": {"Te", "Tellurium", 52, "D47A00", "Connected to the earth, dreaming of stars."},
	"I":  {"I", "Iodine", 53, "940094", "A little of you goes a long way."},
	"Xe": {"Xe", "Xenon", 54, "429EB0", "The stranger who lights the headlamps."},
	"Cs": {"Cs", "Caesium", 55, "57178F", "Defines the second; always on time."},
	"Ba": {"Ba", "Barium", 56, "00C900", "Reveals what is hidden inside."},
	"La": {"La", "Lanthanum", 57, "70D4FF", "Opens a whole new row of possibilities."},
	"Ce": {"Ce", "Cerium", 58, "FFFFC7", "Sparks fly whenever you strike."},
	"Pr": {"Pr", "Praseodymium", 59, "D9FFC7", "Green-tinted glass through which the world looks new."},
	"Nd": {"Nd", "Neodymium", 60, "C7FFC7", "Magnetic; people are drawn in."},
	"Pm": {"Pm", "Promethium", 61, "A3FFC7", "Carries a glow borrowed from the gods."},
	"Sm": {"Sm", "Samarium", 62, "8FFFC7", "Steady attraction that never fades."},
	"Eu": {"Eu", "Europium", 63, "61FFC7", "Makes every colour more vivid."},
	"Gd": {"Gd", "Gadolinium", 64, "45FFC7", "Helps others see clearly."},
	"Tb": {"Tb", "Terbium", 65, "30FFC7", "Bright green glow of optimism."},
	"Dy": {"Dy", "Dysprosium", 66, "1FFFC7", "Hard to get, worth the effort."},
	"Ho": {"Ho", "Holmium", 67, "00FF9C", "The strongest pull in the room."},
	"Er": {"Er", "Erbium", 68, "00E675", "Amplifies every signal it receives."},
	"Tm": {"Tm", "Thulium", 69, "00D452", "Rare and quietly precise."},
	"Yb": {"Yb", "Ytterbium", 70, "00BF38", "Keeps the most accurate time."},
	"Lu": {"Lu", "Lutetium", 71, "00AB24", "Completes the set."},
	"Hf": {"Hf", "Hafnium", 72, "4DC2FF", "Steady under intense conditions."},
	"Ta": {"Ta", "Tantalum", 73, "4DA6FF", "Endures what others cannot."},
	"W":  {"W", "Tungsten", 74, "2194D6", "Highest melting point; cool under fire."},
	"Re": {"Re", "Rhenium", 75, "267DAB", "Last to be found, first to impress."},
	"Os": {"Os", "Osmium", 76, "266696", "Dense with depth and character."},
	"Ir": {"Ir", "Iridium", 77, "175487", "Falls from the stars and stays unbroken."},
	"Pt": {"Pt", "Platinum", 78, "D0D0E0", "Timeless value that never rusts."},
	"Au": {"Au", "Gold", 79, "FFD123", "Warm, radiant and universally treasured."},
	"Hg": {"Hg", "Mercury", 80, "B8B8D0", "Quick, fluid and hard to pin down."},
	"Tl": {"Tl", "Thallium", 81, "A6544D", "Soft exterior, serious interior."},
	"Pb": {"Pb", "Lead", 82, "575961", "Heavy presence; others follow your lead."},
	"Bi": {"Bi", "Bismuth", 83, "9E4FB5", "Rainbow crystals from a gentle heart."},
	"Po": {"Po", "Polonium", 84, "AB5C00", "Small but intensely energetic."},
	"At": {"At", "Astatine", 85, "754F45", "So rare most people never meet it."},
	"Rn": {"Rn", "Radon", 86, "428296", "Invisible influence that rises quietly."},
	"Fr": {"Fr", "Francium", 87, "420066", "Lives fast and reacts to everything."},
	"Ra": {"Ra", "Radium", 88, "007D00", "Glows in the dark without trying."},
	"Ac": {"Ac", "Actinium", 89, "70ABFA", "Starts a whole new series."},
	"Th": {"Th", "Thorium", 90, "00BAFF", "Patient power with a long half-life."},
	"Pa": {"Pa", "Protactinium", 91, "00A1FF", "The one that comes before the big change."},
	"U":  {"U", "Uranium", 92, "008FFF", "Enormous potential waiting to be unlocked."},
	"Np": {"Np", "Neptunium", 93, "0080FF", "Named for the deep; drifts beyond the known."},
	"Pu": {"Pu", "Plutonium", 94, "006BFF", "Powerful enough to light a city."},
	"Am": {"Am", "Americium", 95, "545CF2", "Quietly keeps everyone safe from smoke."},
	"Cm": {"Cm", "Curium", 96, "785CE3", "Curious, radiant and pioneering."},
	"Bk": {"Bk", "Berkelium", 97, "8A4FE3", "Born in a lab of big ideas."},
	"Cf": {"Cf", "Californium", 98, "A136D4", "Sunny, intense and full of neutrons."},
	"Es": {"Es", "Einsteinium", 99, "B31FD4", "Genius that glows blue."},
	"Fm": {"Fm", "Fermium", 100, "B31FBA", "A hundred reasons to be proud."},
	"Md": {"Md", "Mendelevium", 101, "B30DA6", "Brings order to chaos."},
	"No": {"No", "Nobelium", 102, "BD0D87", "Awarded for simply being you."},
	"Lr": {"Lr", "Lawrencium", 103, "C70066", "Accelerates everything around it."},
	"Rf": {"Rf", "Rutherfordium", 104, "CC0059", "Sees the nucleus of every problem."},
	"Db": {"Db", "Dubnium", 105, "D1004F", "Exists briefly, remembered long."},
	"Sg": {"Sg", "Seaborgium", 106, "D90045", "Named while its namesake was still here to see it."},
	"Bh": {"Bh", "Bohrium", 107, "E00038", "Models the orbits of others."},
	"Hs": {"Hs", "Hassium", 108, "E6002E", "Dense with ambition."},
	"Mt": {"Mt", "Meitnerium", 109, "EB0026", "Splits the problem others could not."},
	"Ds": {"Ds", "Darmstadtium", 110, "EE0024", "A fleeting, brilliant discovery."},
	"Rg": {"Rg", "Roentgenium", 111, "F00020", "Sees straight through people."},
	"Cn": {"Cn", "Copernicium", 112, "F2001C", "Puts the sun back at the centre."},
	"Nh": {"Nh", "Nihonium", 113, "F40018", "Rising-sun energy."},
	"Fl": {"Fl", "Flerovium", 114, "F60014", "Searching for an island of stability."},
	"Mc": {"Mc", "Moscovium", 115, "F80010", "Brief but unforgettable."},
	"Lv": {"Lv", "Livermorium", 116, "FA000C", "Lives more in a moment than most do in years."},
	"Ts": {"Ts", "Tennessine", 117, "FC0008", "Halogen heart with heavy ambitions."},
	"Og": {"Og", "Oganesson", 118, "FE0004", "The last word; completes the table."},
}

// byNumber is derived from table at package load.
var byNumber = func() []Record {
	records := make([]Record, 0, len(table))
	for _, r := range table {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].AtomicNumber < records[j].AtomicNumber
	})
	return records
}()

// Lookup returns the record for an exact, canonically cased symbol ("Na", not
// "NA" or "na"). It performs no normalisation.
func Lookup(symbol string) (Record, bool) {
	r, ok := table[symbol]
	return r, ok
}

// CanonicalSymbol upper-cases the first letter of s and lower-cases the rest,
// so user input like "fE" can be passed to Lookup.
func CanonicalSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// ByNumber returns the element with the given atomic number.
func ByNumber(n int) (Record, bool) {
	if n < 1 || n > len(byNumber) {
		return Record{}, false
	}
	return byNumber[n-1], true
}

// All returns a copy of the table ordered by atomic number.
func All() []Record {
	out := make([]Record, len(byNumber))
	copy(out, byNumber)
	return out
}

// Size returns the number of table entries.
func Size() int {
	return len(table)
}
