package encounter

// monsterNames are the themed enemies that pose riddles.
var monsterNames = []string{
	"Halwa Hunter",
	"Harees Horror",
	"Samboosa Stalker",
	"Gahwa Ghoul",
	"Fried Chicken Fiend",
	"Milkshake Mummy",
	"Nugget Nightcrawler",
	"Balaleet Widow",
	"Machboos Djinnlord",
	"Cola Kraken",
	"Shawarma Cyclone",
	"Nugget Horde",
}

// Riddle is one question with its expected free-text answer.
// Answers are concise and lowercase; comparison is normalized.
type Riddle struct {
	Question string
	Answer   string
}

var riddleBank = []Riddle{
	{"What has keys but can't open locks?", "piano"},
	{"I'm tall when I'm young and short when I'm old. What am I?", "candle"},
	{"What has a heart that doesn't beat?", "artichoke"},
	{"What has hands but can't clap?", "clock"},
	{"What can travel around the world while staying in a corner?", "stamp"},
	{"What has many teeth but can't bite?", "comb"},
	{"What gets wetter the more it dries?", "towel"},
	{"What has a neck but no head?", "bottle"},
	{"What has one eye but can't see?", "needle"},
	{"What has a thumb and four fingers but isn't alive?", "glove"},
	{"What has words but never speaks?", "book"},
	{"What can you catch but not throw?", "cold"},
	{"What belongs to you but is used more by others?", "your name"},
	{"What invention lets you look right through a wall?", "window"},
	{"What runs but never walks?", "water"},
	{"What has a bed but never sleeps?", "river"},
	{"Where does today come before yesterday?", "dictionary"},
	{"What has cities but no houses, forests but no trees, and rivers but no water?", "map"},
	{"What can fill a room but takes up no space?", "light"},
	{"What has 88 keys but can't open a single door?", "piano"},
	{"What gets broken without being held?", "promise"},
	{"What has four wheels and flies?", "garbage truck"},
	{"What has to be broken before you can use it?", "egg"},
	{"What kind of band never plays music?", "rubber band"},
	{"What is full of holes but still holds water?", "sponge"},
	{"What has one head, one foot, and four legs?", "bed"},
	{"What has an eye but cannot see and is driven by the wind?", "hurricane"},
	{"What is yours, yet other people use it more than you?", "your name"},
	{"What has a ring but no finger?", "telephone"},
	{"What kind of coat is always wet when you put it on?", "paint"},
	{"What can you keep after giving to someone?", "your word"},
	{"What has legs but doesn't walk?", "table"},
	{"What comes down but never goes up?", "rain"},
	{"What has many rings but no fingers?", "tree"},
	{"What has a face and two hands but no arms or legs?", "clock"},
	{"What is always in front of you but can't be seen?", "future"},
	{"What building has the most stories?", "library"},
	{"What gets sharper the more you use it?", "your brain"},
	{"What kind of room has no doors or windows?", "mushroom"},
	{"What has an end but no beginning, a home but no family, and a space without a room?", "keyboard"},
	{"What word is spelled incorrectly in every dictionary?", "incorrectly"},
	{"What begins with t, ends with t, and has t in it?", "teapot"},
	{"What comes once in a minute, twice in a moment, but never in a thousand years?", "m"},
	{"What has four fingers and a thumb but is not a hand?", "glove"},
	{"What has roots that nobody sees and is taller than trees?", "mountain"},
	{"What has many keys but opens no locks?", "keyboard"},
	{"What flies without wings and cries without eyes?", "cloud"},
	{"What can run but never walks, has a mouth but never talks?", "river"},
	{"What begins with e, ends with e, but only contains one letter?", "envelope"},
	{"What has a spine but no bones?", "book"},
	{"What tastes better than it smells?", "tongue"},
	{"What kind of tree can you carry in your hand?", "palm"},
	{"What has bark but no bite?", "tree"},
	{"What goes up and down but doesn't move?", "staircase"},
	{"What has many needles but doesn't sew?", "pine tree"},
	{"What has ears but cannot hear?", "corn"},
	{"What can't talk but will reply when spoken to?", "echo"},
	{"What can you break, even if you never pick it up or touch it?", "promise"},
	{"What has one head, one tail, is brown, and has no legs?", "penny"},
	{"What building do people go to when they are cold?", "corner"},
	{"What month has 28 days?", "all months"},
	{"What goes through cities and fields but never moves?", "a road"},
	{"What has a mouth but can't chew?", "river"},
	{"What comes with a lot of letters but no words?", "mailbox"},
	{"What begins with p, ends with e, and has thousands of letters?", "post office"},
	{"What has stripes but no clothes?", "zebra"},
	{"What kind of cup doesn't hold water?", "cupcake"},
	{"What has wheels and can fly?", "garbage truck"},
	{"What can be cracked, made, told, and played?", "joke"},
	{"What has two hands, a round face, always runs, yet stays in place?", "clock"},
	{"What begins with an r, ends with an r, and is bruised all over?", "river"},
	{"What has a tail and a head but no body?", "coin"},
	{"What has a head but no brain?", "lettuce"},
	{"What never asks questions but gets answered all the time?", "doorbell"},
	{"What has holes on top and bottom and also on both sides, yet still holds water?", "sponge"},
	{"What kind of room do ghosts avoid?", "living room"},
	{"What do you call a bear with no teeth?", "gummy bear"},
	{"What has four letters, sometimes nine letters, never five letters?", "a statement"},
	{"What is so fragile that saying its name breaks it?", "silence"},
	{"What goes up but never comes down?", "age"},
	{"What is always hungry and must be fed, but if you give it water it will die?", "fire"},
	{"Feed me and I live, give me a drink and I die. What am I?", "fire"},
	{"I shave every day, but my beard stays the same. Who am I?", "barber"},
	{"The more there is, the less you see. What is it?", "darkness"},
	{"What has many keys but can't listen to a single note?", "keyboard"},
	{"What begins with an e and only contains one letter?", "envelope"},
	{"What can you hold in your right hand but never in your left?", "your left hand"},
	{"What can fill your belly but is never eaten?", "laughter"},
	{"What has a head and tail but no arms or legs?", "coin"},
	{"What is always coming but never arrives?", "tomorrow"},
	{"What is as light as a feather, yet the strongest man cannot hold it for long?", "breath"},
	{"What has knees but can't bend?", "bee"},
	{"What can you find at the end of a rainbow?", "w"},
	{"What begins with t and is filled with t?", "teapot"},
}
